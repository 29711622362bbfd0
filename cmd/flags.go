package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/s0up4200/qbit-mover/config"
	"github.com/s0up4200/qbit-mover/qbittorrent"
)

// pauseOnlyFlags only make sense for the pause command
var pauseOnlyFlags = []string{"cache-mount", "days-from", "days-to", "status-filter", "filter"}

func addPauseFlags(fs *pflag.FlagSet) {
	fs.String("cache-mount", "", "only pause torrents whose content exists under this cache mount")
	fs.Int("days-from", 0, "pause torrents added at least this many days ago")
	fs.Int("days-to", 2, "pause torrents added at most this many days ago")
	fs.String("status-filter", "completed", "qBittorrent status filter ("+strings.Join(qbittorrent.StatusFilters, ", ")+")")
	fs.String("filter", "", `extra expression a torrent must satisfy, e.g. 'hasTag("cache")'`)
}

// rejectPauseFlags fails when any pause-only flag was given explicitly
func rejectPauseFlags(cmd *cobra.Command) error {
	var given []string
	for _, name := range pauseOnlyFlags {
		if cmd.Flags().Changed(name) {
			given = append(given, "--"+name)
		}
	}
	if len(given) == 0 {
		return nil
	}
	return &config.ValidationError{
		Field:   "flags",
		Message: strings.Join(given, ", ") + " can only be used with the pause command",
	}
}
