package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/qbit-mover/mover"
)

// resumeCmd represents the resume command
var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume the torrents paused by the last pause run",
	Long: `Resume the torrents recorded in the state file by the last pause run and
delete the state file. Torrents removed from qBittorrent in the meantime are
skipped.`,
	Example: `  qbit-mover resume --host localhost:8080`,
	Args:    cobra.NoArgs,
	RunE:    runResume,
}

func init() {
	rootCmd.AddCommand(resumeCmd)

	// Hidden; rejectPauseFlags reports them by name.
	addPauseFlags(resumeCmd.Flags())
	for _, name := range pauseOnlyFlags {
		_ = resumeCmd.Flags().MarkHidden(name)
	}
}

func runResume(cmd *cobra.Command, args []string) error {
	if err := rejectPauseFlags(cmd); err != nil {
		return err
	}

	a, err := initializeApp(cmd)
	if err != nil {
		return err
	}

	res, err := a.ops.Resume(cmd.Context(), mover.ResumeOptions{
		DryRun: a.cfg.DryRun,
	})
	if err != nil {
		return err
	}

	if a.cfg.DryRun {
		f := mover.NewConsoleFormatter()
		out := cmd.OutOrStdout()
		fmt.Fprint(out, f.FormatTorrentList("Torrents to resume", res.Resumed))
		fmt.Fprint(out, f.FormatMissing(res.Missing))
	}
	return nil
}
