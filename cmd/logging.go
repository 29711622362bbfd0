package cmd

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/s0up4200/qbit-mover/config"
)

// setupLogger configures the zerolog logger. Console output is colored only when
// out is a terminal. When cfg.File is set, records are also written there, rotated
// by lumberjack.
func setupLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	var primary io.Writer = out
	if cfg.Format != "json" {
		primary = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    !cfg.Color || !isTerminal(out),
		}
	}

	writer := primary
	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}

		var fileWriter io.Writer = rotating
		if cfg.Format != "json" {
			fileWriter = zerolog.ConsoleWriter{
				Out:        rotating,
				TimeFormat: time.RFC3339,
				NoColor:    true,
			}
		}
		writer = zerolog.MultiLevelWriter(primary, fileWriter)
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
