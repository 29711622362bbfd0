package filter

import (
	"github.com/s0up4200/qbit-mover/fsutil"
	"github.com/s0up4200/qbit-mover/qbittorrent"
)

// CacheFilter keeps torrents whose content currently exists under Root.
// The zero value disables the check.
type CacheFilter struct {
	Root string
}

// Enabled reports whether a cache root is configured.
func (c CacheFilter) Enabled() bool {
	return c.Root != ""
}

// Name implements Predicate.
func (c CacheFilter) Name() string {
	return "cache-mount"
}

// Match implements Predicate. Only existence is checked; nothing is read. Torrents
// without a content path are looked up by save path and name.
func (c CacheFilter) Match(t *qbittorrent.TorrentInfo) (bool, error) {
	if !c.Enabled() {
		return true, nil
	}

	path := fsutil.Resolve(c.Root, t.GetFullPath())
	ok, err := fsutil.Exists(path)
	if err != nil {
		return false, &EvaluationError{
			FilterName:  c.Name(),
			TorrentName: t.Name,
			Reason:      "cannot check content on cache",
			Err:         err,
		}
	}
	return ok, nil
}
