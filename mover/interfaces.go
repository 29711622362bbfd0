package mover

import (
	"context"

	"github.com/s0up4200/qbit-mover/qbittorrent"
	"github.com/s0up4200/qbit-mover/state"
)

var (
	_ TorrentClient = (*qbittorrent.Client)(nil)
	_ StateStore    = (*state.Store)(nil)
)

// TorrentClient defines the torrent client operations the coordinator needs
type TorrentClient interface {
	// ListNewestFirst lists torrents with the given status, sorted by added time, newest first
	ListNewestFirst(ctx context.Context, status string) ([]*qbittorrent.TorrentInfo, error)

	// GetAllTorrents lists every torrent the client currently knows
	GetAllTorrents(ctx context.Context) ([]*qbittorrent.TorrentInfo, error)

	Pause(ctx context.Context, t *qbittorrent.TorrentInfo) error
	Resume(ctx context.Context, t *qbittorrent.TorrentInfo) error
}

// ConnectFunc opens a session with the torrent client. It is called only after
// all local validation has passed.
type ConnectFunc func(ctx context.Context) (TorrentClient, error)

// StateStore persists the hand-off record between the two phases
type StateStore interface {
	Save(hashes []string) (*state.PauseState, error)
	Load() (*state.PauseState, error)
	Delete() error
	Path() string
}
