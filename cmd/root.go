package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/s0up4200/qbit-mover/config"
	"github.com/s0up4200/qbit-mover/mover"
	"github.com/s0up4200/qbit-mover/qbittorrent"
	"github.com/s0up4200/qbit-mover/state"
)

var (
	version   = "dev"
	buildTime = "unknown"

	logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true}, os.Stdout)
)

// app holds what a command needs once configuration is loaded
type app struct {
	cfg *config.Config
	ops *mover.Operations
}

// SetVersion sets the version information
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qbit-mover",
	Short: "Pause qBittorrent torrents around a cache mover run",
	Long: `qbit-mover pauses recently added torrents whose data still lives on a cache
drive before the mover runs, and resumes exactly those torrents afterwards.

Run "qbit-mover pause" before the mover starts and "qbit-mover resume" once it
has finished. The paused torrents are recorded in a state file between the two.`,
	Args:          cobra.NoArgs,
	RunE:          runRoot,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the CLI and exits non-zero after logging a single error line.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		logger.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default is ./qbit-mover.yaml)")
	pf.String("host", "", "qBittorrent WebUI host, e.g. localhost:8080 (required)")
	pf.StringP("user", "u", "admin", "qBittorrent WebUI username")
	pf.StringP("password", "p", "adminadmin", "qBittorrent WebUI password")
	pf.Duration("timeout", 0, "request timeout for the qBittorrent WebUI (default 30s)")
	pf.Bool("tls-skip-verify", false, "skip TLS certificate verification")
	pf.String("state-file", "./qbit_mover_state.json", "path of the state file shared by pause and resume")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.Bool("dry-run", false, "log what would happen without pausing, resuming or touching the state file")
	pf.String("log-format", "console", "log format (console or json)")
	pf.String("log-file", "", "also write logs to this file, rotated by size")
}

// runRoot rejects a bare invocation; an action is required
func runRoot(cmd *cobra.Command, args []string) error {
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return &config.ValidationError{
		Field:   "command",
		Message: `an action is required: "pause" or "resume"`,
	}
}

// initializeApp loads configuration, reconfigures the logger and wires the
// coordinator. Nothing here talks to qBittorrent.
func initializeApp(cmd *cobra.Command) (*app, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Logging.Level = "debug"
	}
	logger = setupLogger(cfg.Logging, os.Stdout)

	logger.Debug().
		Str("host", cfg.QBittorrent.Host).
		Str("state_file", cfg.StateFile).
		Bool("dry_run", cfg.DryRun).
		Msg("Configuration loaded")

	store := state.NewStore(cfg.StateFile)
	ops := mover.NewOperations(connector(cfg.QBittorrent), store, logger)

	return &app{cfg: cfg, ops: ops}, nil
}

// connector returns a mover.ConnectFunc that logs in with the configured credentials
func connector(cfg config.QBittorrentConfig) mover.ConnectFunc {
	return func(ctx context.Context) (mover.TorrentClient, error) {
		opts := []qbittorrent.Option{qbittorrent.WithTimeout(cfg.Timeout)}
		if cfg.BasicUser != "" {
			opts = append(opts, qbittorrent.WithBasicAuth(cfg.BasicUser, cfg.BasicPass))
		}
		if cfg.TLSSkipVerify {
			opts = append(opts, qbittorrent.WithInsecureSkipVerify())
		}

		client, err := qbittorrent.Connect(ctx, qbittorrent.Config{
			Host:     cfg.Host,
			Username: cfg.User,
			Password: cfg.Password,
		}, logger, opts...)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}
