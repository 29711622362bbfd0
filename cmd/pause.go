package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/qbit-mover/mover"
)

// pauseCmd represents the pause command
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause recently added torrents that are still on the cache",
	Long: `Pause every torrent matching the status filter that was added between
--days-from and --days-to days ago. With --cache-mount, only torrents whose content
currently exists under that mount are paused. The paused torrents are recorded in
the state file for the resume command.`,
	Example: `  qbit-mover pause --host localhost:8080 --cache-mount /mnt/cache --days-to 3
  qbit-mover pause --host localhost:8080 --filter 'Category == "radarr"' --dry-run`,
	Args: cobra.NoArgs,
	RunE: runPause,
}

func init() {
	rootCmd.AddCommand(pauseCmd)

	addPauseFlags(pauseCmd.Flags())
}

func runPause(cmd *cobra.Command, args []string) error {
	a, err := initializeApp(cmd)
	if err != nil {
		return err
	}
	if err := a.cfg.ValidatePause(); err != nil {
		return err
	}

	p := a.cfg.Pause
	res, err := a.ops.Pause(cmd.Context(), mover.PauseOptions{
		DaysFrom:     p.DaysFrom,
		DaysTo:       p.DaysTo,
		StatusFilter: p.StatusFilter,
		CacheMount:   p.CacheMount,
		Filter:       p.Filter,
		DryRun:       a.cfg.DryRun,
	})
	if err != nil {
		return err
	}

	if a.cfg.DryRun {
		fmt.Fprint(cmd.OutOrStdout(), mover.NewConsoleFormatter().FormatTorrentList("Torrents to pause", res.Matched))
	}
	return nil
}
