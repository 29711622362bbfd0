package mover

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s0up4200/qbit-mover/qbittorrent"
)

func TestFormatTorrentList(t *testing.T) {
	f := NewConsoleFormatter()

	assert.Equal(t, "No torrents selected\n", f.FormatTorrentList("Torrents to pause", nil))

	a := torrent("a", 1)
	a.Category = "radarr"
	a.Tags = []string{"cache"}
	a.Size = 3 << 30
	b := torrent("b", 1.5)

	out := f.FormatTorrentList("Torrents to pause", []*qbittorrent.TorrentInfo{a, b})
	assert.Contains(t, out, "Torrents to pause (2):")
	assert.Contains(t, out, "├── name-a")
	assert.Contains(t, out, "╰── name-b")
	assert.Contains(t, out, "Category: radarr | Tags: cache")
	assert.Contains(t, out, "Size: 3.0 GiB")
	assert.Contains(t, out, "Content: /data/torrents/b")
	assert.Equal(t, 1, strings.Count(out, "Category:"))
}

func TestFormatMissing(t *testing.T) {
	f := NewConsoleFormatter()
	assert.Empty(t, f.FormatMissing(nil))
	assert.Contains(t, f.FormatMissing([]string{"h2"}), "(1):\n  h2\n")
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KiB", formatBytes(1024))
	assert.Equal(t, "1.5 MiB", formatBytes(3<<19))
}
