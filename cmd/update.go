package cmd

import (
	"context"
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// repository is the GitHub slug release binaries are published under
var repository = "s0up4200/qbit-mover"

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update qbit-mover to the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := selfUpdate(cmd.Context(), version)
		return err
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

// selfUpdate replaces the running binary with the latest GitHub release when it
// is newer than current. It reports whether an update was applied.
func selfUpdate(ctx context.Context, current string) (bool, error) {
	if _, err := semver.ParseTolerant(current); err != nil {
		return false, fmt.Errorf("cannot update a %q build: %w", current, err)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repository))
	if err != nil {
		return false, fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return false, fmt.Errorf("no release found for %s", repository)
	}

	if latest.LessOrEqual(current) {
		logger.Info().Str("version", current).Msg("Current binary is the latest version")
		return false, nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return false, fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return false, fmt.Errorf("error occurred while updating binary: %w", err)
	}

	logger.Info().Str("version", latest.Version()).Msg("Successfully updated")
	return true, nil
}
