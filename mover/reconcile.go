package mover

import (
	"github.com/s0up4200/qbit-mover/qbittorrent"
	"github.com/s0up4200/qbit-mover/state"
)

// Reconcile intersects the saved hashes with the client's current torrents.
// toResume keeps the client's order; missing lists saved hashes the client no
// longer has, in saved order.
func Reconcile(saved *state.PauseState, current []*qbittorrent.TorrentInfo) (toResume []*qbittorrent.TorrentInfo, missing []string) {
	wanted := saved.HashSet()
	seen := make(map[string]struct{}, len(wanted))

	for _, t := range current {
		if _, ok := wanted[t.Hash]; !ok {
			continue
		}
		if _, dup := seen[t.Hash]; dup {
			continue
		}
		seen[t.Hash] = struct{}{}
		toResume = append(toResume, t)
	}

	for _, hash := range saved.TorrentHashes {
		if _, ok := seen[hash]; ok {
			continue
		}
		seen[hash] = struct{}{}
		missing = append(missing, hash)
	}

	return toResume, missing
}
