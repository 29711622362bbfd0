package qbittorrent

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/autobrr/go-qbittorrent"
	"github.com/rs/zerolog"
)

// SortAddedOn is the qBittorrent sort key for the time a torrent was added.
const SortAddedOn = "added_on"

// StatusFilters lists the status filters accepted by the qBittorrent torrents/info endpoint.
var StatusFilters = []string{
	"all", "downloading", "seeding", "completed", "paused",
	"stopped", "active", "inactive", "resumed", "running",
	"stalled", "stalled_uploading", "stalled_downloading",
	"checking", "moving", "errored",
}

// API is the subset of the go-qbittorrent client used by Client.
type API interface {
	LoginCtx(ctx context.Context) error
	GetWebAPIVersionCtx(ctx context.Context) (string, error)
	GetTorrentsCtx(ctx context.Context, o qbittorrent.TorrentFilterOptions) ([]qbittorrent.Torrent, error)
	PauseCtx(ctx context.Context, hashes []string) error
	ResumeCtx(ctx context.Context, hashes []string) error
}

// Config holds the WebUI connection details.
type Config struct {
	Host     string
	Username string
	Password string
}

// ListOptions selects and orders the torrents returned by ListTorrents.
type ListOptions struct {
	Status  string
	Sort    string
	Reverse bool
}

// Client wraps the qBittorrent API client
type Client struct {
	api    API
	logger zerolog.Logger
}

// Connect creates a qBittorrent client and logs in. Bad credentials yield
// ErrAuthFailed; every other login failure yields ErrConnectionFailed.
func Connect(ctx context.Context, cfg Config, logger zerolog.Logger, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	api := qbittorrent.NewClient(qbittorrent.Config{
		Host:          normalizeHost(cfg.Host),
		Username:      cfg.Username,
		Password:      cfg.Password,
		BasicUser:     o.basicUser,
		BasicPass:     o.basicPass,
		TLSSkipVerify: o.tlsSkipVerify,
		Timeout:       int(o.timeout.Seconds()),
	})

	client := NewClientWithAPI(api, logger)
	if err := client.login(ctx, o); err != nil {
		return nil, err
	}

	return client, nil
}

// normalizeHost accepts bare host:port values and assumes plain HTTP for them.
func normalizeHost(host string) string {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if host == "" || strings.Contains(host, "://") {
		return host
	}
	return "http://" + host
}

// NewClientWithAPI creates a Client around an existing API implementation without logging in.
func NewClientWithAPI(api API, logger zerolog.Logger) *Client {
	return &Client{
		api:    api,
		logger: logger,
	}
}

func (c *Client) login(ctx context.Context, o clientOptions) error {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	if err := c.api.LoginCtx(ctx); err != nil {
		if errors.Is(err, qbittorrent.ErrBadCredentials) {
			return fmt.Errorf("%w: %w", ErrAuthFailed, err)
		}
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	if version, err := c.WebAPIVersion(ctx); err == nil {
		c.logger.Debug().Str("webAPIVersion", version).Msg("Connected to qBittorrent")
	} else {
		c.logger.Debug().Err(err).Msg("Connected to qBittorrent, WebAPI version unknown")
	}

	return nil
}

// ValidateStatusFilter checks that status is one of StatusFilters.
func ValidateStatusFilter(status string) error {
	for _, s := range StatusFilters {
		if s == status {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidStatusFilter, status)
}

// ListTorrents retrieves torrents matching opts, in the order qBittorrent returns them.
func (c *Client) ListTorrents(ctx context.Context, opts ListOptions) ([]*TorrentInfo, error) {
	filter := qbittorrent.TorrentFilterOptions{
		Sort:    opts.Sort,
		Reverse: opts.Reverse,
	}
	if opts.Status != "" {
		if err := ValidateStatusFilter(opts.Status); err != nil {
			return nil, err
		}
		filter.Filter = qbittorrent.TorrentFilter(opts.Status)
	}

	torrents, err := c.api.GetTorrentsCtx(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get torrents: %w", err)
	}

	c.logger.Debug().
		Str("status", opts.Status).
		Str("sort", opts.Sort).
		Bool("reverse", opts.Reverse).
		Msgf("Retrieved %d torrents from qBittorrent", len(torrents))

	results := make([]*TorrentInfo, 0, len(torrents))
	for _, t := range torrents {
		results = append(results, newTorrentInfo(t))
	}

	return results, nil
}

// ListNewestFirst lists torrents with the given status sorted by added time, newest first.
// qBittorrent does the sorting; a stable re-sort guards against servers that ignore it.
func (c *Client) ListNewestFirst(ctx context.Context, status string) ([]*TorrentInfo, error) {
	torrents, err := c.ListTorrents(ctx, ListOptions{
		Status:  status,
		Sort:    SortAddedOn,
		Reverse: true,
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(torrents, func(i, j int) bool {
		return torrents[i].AddedOn.After(torrents[j].AddedOn)
	})

	return torrents, nil
}

// GetAllTorrents retrieves the full current torrent list.
func (c *Client) GetAllTorrents(ctx context.Context) ([]*TorrentInfo, error) {
	return c.ListTorrents(ctx, ListOptions{})
}

// Pause pauses a single torrent.
func (c *Client) Pause(ctx context.Context, t *TorrentInfo) error {
	if err := c.api.PauseCtx(ctx, []string{t.Hash}); err != nil {
		return fmt.Errorf("failed to pause torrent %s: %w", t.Hash, err)
	}
	return nil
}

// Resume resumes a single torrent.
func (c *Client) Resume(ctx context.Context, t *TorrentInfo) error {
	if err := c.api.ResumeCtx(ctx, []string{t.Hash}); err != nil {
		return fmt.Errorf("failed to resume torrent %s: %w", t.Hash, err)
	}
	return nil
}

// WebAPIVersion returns the WebUI API version reported by qBittorrent.
func (c *Client) WebAPIVersion(ctx context.Context) (string, error) {
	version, err := c.api.GetWebAPIVersionCtx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get WebAPI version: %w", err)
	}
	return version, nil
}
