package filter

import (
	"github.com/s0up4200/qbit-mover/qbittorrent"
)

// Predicate is an extra condition a torrent must satisfy once it is inside the
// selection window. Predicates never influence early termination.
type Predicate interface {
	// Name identifies the predicate in errors and logs
	Name() string

	// Match reports whether the torrent passes. An error aborts the selection.
	Match(t *qbittorrent.TorrentInfo) (bool, error)
}
