package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/qbit-mover/config"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true},
		{level: "info", wantInfo: true},
		{level: "warn"},
		{level: "", wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := setupLogger(config.LoggingConfig{Level: tt.level, Format: "json"}, &buf)

			l.Debug().Msg("debug-line")
			l.Info().Msg("info-line")

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug-line")))
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info-line")))
		})
	}
}

func TestSetupLoggerConsoleWithoutTerminalHasNoColor(t *testing.T) {
	var buf bytes.Buffer
	l := setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true}, &buf)

	l.Info().Str("hash", "abc").Msg("Pausing: Some.Torrent")

	out := buf.String()
	assert.Contains(t, out, "Pausing: Some.Torrent")
	assert.Contains(t, out, "hash=abc")
	assert.NotContains(t, out, "\x1b[")
}

func TestSetupLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qbit-mover.log")

	var buf bytes.Buffer
	l := setupLogger(config.LoggingConfig{Level: "info", Format: "json", File: path, MaxSize: 1}, &buf)
	l.Info().Msg("to both")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}
