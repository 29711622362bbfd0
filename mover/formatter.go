package mover

import (
	"fmt"
	"strings"

	"github.com/s0up4200/qbit-mover/qbittorrent"
)

// ConsoleFormatter renders torrent batches as a tree for terminal output
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatTorrentList formats torrents under a header such as "Torrents to pause"
func (f *ConsoleFormatter) FormatTorrentList(header string, torrents []*qbittorrent.TorrentInfo) string {
	if len(torrents) == 0 {
		return "No torrents selected\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", header, len(torrents))

	for i, t := range torrents {
		isLast := i == len(torrents)-1
		prefix := "├"
		indent := "│   "
		if isLast {
			prefix = "╰"
			indent = "    "
		}

		fmt.Fprintf(&sb, "%s── %s\n", prefix, t.Name)
		fmt.Fprintf(&sb, "%sAdded: %s | State: %s | Size: %s\n",
			indent, t.AddedOn.Local().Format(addedLayout), t.State, formatBytes(t.Size))

		if t.Category != "" || len(t.Tags) > 0 {
			var parts []string
			if t.Category != "" {
				parts = append(parts, "Category: "+t.Category)
			}
			if len(t.Tags) > 0 {
				parts = append(parts, "Tags: "+strings.Join(t.Tags, ", "))
			}
			fmt.Fprintf(&sb, "%s%s\n", indent, strings.Join(parts, " | "))
		}

		if t.ContentPath != "" {
			fmt.Fprintf(&sb, "%sContent: %s\n", indent, t.ContentPath)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatMissing lists saved hashes that no longer exist in the client
func (f *ConsoleFormatter) FormatMissing(hashes []string) string {
	if len(hashes) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Saved torrents no longer in qBittorrent (%d):\n", len(hashes))
	for _, h := range hashes {
		fmt.Fprintf(&sb, "  %s\n", h)
	}
	return sb.String()
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
