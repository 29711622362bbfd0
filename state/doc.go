// Package state persists the set of torrents paused by the pause phase so the
// resume phase, run later as a separate process, can resume exactly those.
//
// The record is a small JSON document:
//
//	{
//	  "torrent_hashes": ["<hash>", ...],
//	  "timestamp": "2025-06-01T12:00:00Z",
//	  "version": "1.0"
//	}
//
// torrent_hashes and timestamp are required; unknown fields are ignored. One file
// describes one in-flight pause/resume cycle. Nothing locks the file, so two
// overlapping cycles must not share a path.
package state
