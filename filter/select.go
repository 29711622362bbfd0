package filter

import (
	"github.com/s0up4200/qbit-mover/qbittorrent"
)

// Select returns the torrents added inside w that also pass cache and every extra
// predicate, preserving input order.
//
// torrents must be sorted by AddedOn, newest first. The scan stops at the first
// torrent older than the window; given an unsorted input the result is silently
// incomplete. Callers obtain the list from qbittorrent.Client.ListNewestFirst.
func Select(torrents []*qbittorrent.TorrentInfo, w Window, cache CacheFilter, extra ...Predicate) ([]*qbittorrent.TorrentInfo, error) {
	var result []*qbittorrent.TorrentInfo

	for _, t := range torrents {
		if w.Passed(t.AddedOn) {
			break
		}
		if !w.Contains(t.AddedOn) {
			continue
		}

		ok, err := matchAll(t, cache, extra)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, t)
		}
	}

	return result, nil
}

func matchAll(t *qbittorrent.TorrentInfo, cache CacheFilter, extra []Predicate) (bool, error) {
	if cache.Enabled() {
		ok, err := cache.Match(t)
		if err != nil || !ok {
			return false, err
		}
	}

	for _, p := range extra {
		ok, err := p.Match(t)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}
