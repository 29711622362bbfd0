package mover

import (
	"context"

	"github.com/s0up4200/qbit-mover/qbittorrent"
)

// addedLayout formats the added-on time in action logs
const addedLayout = "2006-01-02 15:04:05"

// Action is the operation applied to a batch of torrents
type Action int

const (
	ActionPause Action = iota
	ActionResume
)

func (a Action) String() string {
	if a == ActionPause {
		return "pause"
	}
	return "resume"
}

func (a Action) progressive() string {
	if a == ActionPause {
		return "Pausing"
	}
	return "Resuming"
}

// apply runs action on each torrent in order, one client call per torrent. The
// first failure stops the batch; nothing is retried or rolled back.
func (o *Operations) apply(ctx context.Context, client TorrentClient, torrents []*qbittorrent.TorrentInfo, action Action, dryRun bool) error {
	for i, t := range torrents {
		event := o.logger.Info().
			Str("hash", t.Hash).
			Str("added", t.AddedOn.Local().Format(addedLayout))

		if dryRun {
			event.Msgf("[DRY RUN] Would %s: %s", action, t.Name)
			continue
		}
		event.Msgf("%s: %s", action.progressive(), t.Name)

		var err error
		switch action {
		case ActionPause:
			err = client.Pause(ctx, t)
		case ActionResume:
			err = client.Resume(ctx, t)
		}
		if err != nil {
			return &ActionError{
				Action:    action,
				Hash:      t.Hash,
				Name:      t.Name,
				Completed: i,
				Err:       err,
			}
		}
	}
	return nil
}
