package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/qbit-mover/config"
	"github.com/s0up4200/qbit-mover/filter"
	"github.com/s0up4200/qbit-mover/state"
)

// unreachableHost is never contacted by the tests below; every case fails first.
const unreachableHost = "127.0.0.1:1"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	resetFlags(rootCmd)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{}, args...))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// resetFlags restores every flag in the tree to its default and clears Changed,
// so values from an earlier Execute do not leak into the next one.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestActionIsRequired(t *testing.T) {
	out, err := run(t)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "an action is required")
	assert.Contains(t, out, "Usage:")
}

func TestUnknownAction(t *testing.T) {
	_, err := run(t, "restart")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restart")
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	_, err := run(t, "resume", "--host", unreachableHost, "--days-to", "3")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	stateFile := filepath.Join(t.TempDir(), "state.json")
	_, err = run(t, "resume", "--host", unreachableHost, "--state-file", stateFile)
	require.ErrorIs(t, err, state.ErrNotFound)
}

func TestResumeRejectsPauseOnlyFlags(t *testing.T) {
	_, err := run(t, "resume", "--host", unreachableHost, "--days-to", "3", "--cache-mount", "/mnt/cache")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "--cache-mount")
	assert.Contains(t, err.Error(), "--days-to")
	assert.NotContains(t, err.Error(), "--days-from")
}

func TestPauseRejectsInvertedWindow(t *testing.T) {
	_, err := run(t, "pause", "--host", unreachableHost, "--days-from", "5", "--days-to", "2")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, filter.ErrInvalidWindow)
	assert.Contains(t, err.Error(), "days_from (5) must be set lower than days_to (2)")
}

func TestPauseRejectsUnknownStatus(t *testing.T) {
	_, err := run(t, "pause", "--host", unreachableHost, "--status-filter", "sleeping")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestPauseRejectsBadExpression(t *testing.T) {
	_, err := run(t, "pause", "--host", unreachableHost, "--filter", "Size +")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestHostIsRequired(t *testing.T) {
	_, err := run(t, "pause")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "qbittorrent.host")
}

func TestResumeWithoutStateFile(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "state.json")

	_, err := run(t, "resume", "--host", unreachableHost, "--state-file", stateFile)
	require.ErrorIs(t, err, state.ErrNotFound)
	assert.Contains(t, err.Error(), "did you run with 'pause' first?")
}

func TestUnknownCommandArgs(t *testing.T) {
	_, err := run(t, "pause", "extra", "--host", unreachableHost)
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3", "2025-06-01")
	t.Cleanup(func() { SetVersion("dev", "unknown") })

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "qbit-mover 1.2.3")
	assert.Contains(t, out, "2025-06-01")
}

func TestSelfUpdateRejectsDevBuild(t *testing.T) {
	updated, err := selfUpdate(context.Background(), "dev")
	require.Error(t, err)
	assert.False(t, updated)
}
