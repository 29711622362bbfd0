package mover

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/s0up4200/qbit-mover/filter"
	"github.com/s0up4200/qbit-mover/fsutil"
	"github.com/s0up4200/qbit-mover/qbittorrent"
	"github.com/s0up4200/qbit-mover/state"
)

// PauseOptions configures the pause phase
type PauseOptions struct {
	DaysFrom     int
	DaysTo       int
	StatusFilter string
	CacheMount   string
	Filter       string
	DryRun       bool
}

// PauseResult summarises a pause run
type PauseResult struct {
	Window  filter.Window
	Scanned int
	Matched []*qbittorrent.TorrentInfo
	State   *state.PauseState
}

// ResumeOptions configures the resume phase
type ResumeOptions struct {
	DryRun bool
}

// ResumeResult summarises a resume run
type ResumeResult struct {
	Saved      *state.PauseState
	Resumed    []*qbittorrent.TorrentInfo
	Missing    []string
	CleanupErr error
}

// Operations runs the pause and resume phases around a mover run
type Operations struct {
	connect ConnectFunc
	store   StateStore
	logger  zerolog.Logger
	now     func() time.Time
}

// NewOperations creates a new Operations instance
func NewOperations(connect ConnectFunc, store StateStore, logger zerolog.Logger) *Operations {
	return &Operations{
		connect: connect,
		store:   store,
		logger:  logger,
		now:     time.Now,
	}
}

// Pause pauses the torrents added inside the configured window whose content is
// still on the cache, then records them in the state file. Options are checked
// before the client is contacted. When nothing matches, no state file is written.
func (o *Operations) Pause(ctx context.Context, opts PauseOptions) (*PauseResult, error) {
	window, err := filter.NewWindow(o.now(), opts.DaysFrom, opts.DaysTo)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if err := qbittorrent.ValidateStatusFilter(opts.StatusFilter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	var extra []filter.Predicate
	if opts.Filter != "" {
		f, err := filter.CompileExprFilter(opts.Filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		}
		extra = append(extra, f)
	}

	cache := filter.CacheFilter{Root: opts.CacheMount}
	if cache.Enabled() {
		if ok, err := fsutil.IsDir(cache.Root); err == nil && !ok {
			o.logger.Warn().Str("cache_mount", cache.Root).Msg("Cache mount is not a directory, no torrent will match")
		}
	}

	client, err := o.connect(ctx)
	if err != nil {
		return nil, err
	}

	torrents, err := client.ListNewestFirst(ctx, opts.StatusFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list torrents: %w", err)
	}

	o.logger.Debug().
		Int("torrents", len(torrents)).
		Str("status", opts.StatusFilter).
		Time("from", window.From).
		Time("to", window.To).
		Msg("Selecting torrents")

	matched, err := filter.Select(torrents, window, cache, extra...)
	if err != nil {
		return nil, fmt.Errorf("failed to select torrents: %w", err)
	}

	result := &PauseResult{
		Window:  window,
		Scanned: len(torrents),
		Matched: matched,
	}

	if len(matched) == 0 {
		o.logger.Warn().Msg("No matching torrents found to pause")
		return result, nil
	}

	o.logger.Info().Msgf("Found %d matching torrents from %d - %d days ago", len(matched), opts.DaysFrom, opts.DaysTo)

	if err := o.apply(ctx, client, matched, ActionPause, opts.DryRun); err != nil {
		o.logPartial(err)
		return result, err
	}

	if opts.DryRun {
		o.logger.Info().Str("path", o.store.Path()).Msg("[DRY RUN] Would save torrent state")
		return result, nil
	}

	st, err := o.store.Save(torrentHashes(matched))
	if err != nil {
		return result, fmt.Errorf("failed to save state: %w", err)
	}
	result.State = st

	o.logger.Info().Str("path", o.store.Path()).Msg("Torrent state saved")
	return result, nil
}

// Resume resumes the torrents recorded by the last pause that still exist in the
// client, then deletes the state file. The state file is read before the client
// is contacted. A failed delete is logged and reported in the result only.
func (o *Operations) Resume(ctx context.Context, opts ResumeOptions) (*ResumeResult, error) {
	saved, err := o.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	o.logger.Debug().
		Int("hashes", len(saved.TorrentHashes)).
		Time("paused_at", saved.Timestamp).
		Str("version", saved.Version).
		Msg("Loaded torrent state")

	if !saved.Compatible() {
		o.logger.Warn().
			Str("version", saved.Version).
			Str("supported", state.SchemaVersion).
			Msg("State file was written by an unknown schema version, using torrent_hashes as is")
	}

	client, err := o.connect(ctx)
	if err != nil {
		return nil, err
	}

	current, err := client.GetAllTorrents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list torrents: %w", err)
	}

	toResume, missing := Reconcile(saved, current)
	result := &ResumeResult{
		Saved:   saved,
		Resumed: toResume,
		Missing: missing,
	}

	for _, hash := range missing {
		o.logger.Debug().Str("hash", hash).Msg("Saved torrent no longer exists in client, skipping")
	}

	if len(toResume) == 0 {
		o.logger.Warn().Msg("No saved torrents found to resume")
	} else {
		o.logger.Info().Msgf("Resuming %d paused torrents", len(toResume))
		if err := o.apply(ctx, client, toResume, ActionResume, opts.DryRun); err != nil {
			o.logPartial(err)
			return result, err
		}
	}

	if opts.DryRun {
		o.logger.Info().Str("path", o.store.Path()).Msg("[DRY RUN] Would delete torrent state")
		return result, nil
	}

	if err := o.store.Delete(); err != nil {
		result.CleanupErr = err
		o.logger.Warn().Err(err).Str("path", o.store.Path()).Msg("Failed to clean up state file")
		return result, nil
	}

	o.logger.Debug().Str("path", o.store.Path()).Msg("Torrent state deleted")
	return result, nil
}

// logPartial reports how far a failed batch got. Torrents already handled are
// not rolled back.
func (o *Operations) logPartial(err error) {
	var ae *ActionError
	if errors.As(err, &ae) && ae.Completed > 0 {
		o.logger.Warn().
			Int("completed", ae.Completed).
			Stringer("action", ae.Action).
			Msg("Batch aborted after partial success, earlier torrents keep their new state")
	}
}

func torrentHashes(torrents []*qbittorrent.TorrentInfo) []string {
	hashes := make([]string, 0, len(torrents))
	for _, t := range torrents {
		hashes = append(hashes, t.Hash)
	}
	return hashes
}
