package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/s0up4200/qbit-mover/filter"
	"github.com/s0up4200/qbit-mover/qbittorrent"
)

// EnvPrefix prefixes every environment variable override
const EnvPrefix = "QBIT_MOVER"

// flagKeys maps command-line flag names to configuration keys
var flagKeys = map[string]string{
	"host":            "qbittorrent.host",
	"user":            "qbittorrent.user",
	"password":        "qbittorrent.password",
	"timeout":         "qbittorrent.timeout",
	"tls-skip-verify": "qbittorrent.tls_skip_verify",
	"days-from":       "pause.days_from",
	"days-to":         "pause.days_to",
	"status-filter":   "pause.status_filter",
	"cache-mount":     "pause.cache_mount",
	"filter":          "pause.filter",
	"state-file":      "state_file",
	"dry-run":         "dry_run",
	"log-format":      "logging.format",
	"log-file":        "logging.file",
}

// Load builds the configuration from defaults, an optional YAML file, QBIT_MOVER_*
// environment variables and the given flags, in increasing precedence. Only flags
// the user actually set override lower layers. A missing config file is an error
// only when configPath names one explicitly.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("qbit-mover")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "qbit-mover"))
		}

		// Check /etc
		v.AddConfigPath("/etc/qbit-mover/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// bindFlags binds every known flag present in flags to its configuration key
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// qBittorrent defaults
	v.SetDefault("qbittorrent.host", "")
	v.SetDefault("qbittorrent.user", "admin")
	v.SetDefault("qbittorrent.password", "adminadmin")
	v.SetDefault("qbittorrent.basic_user", "")
	v.SetDefault("qbittorrent.basic_pass", "")
	v.SetDefault("qbittorrent.tls_skip_verify", false)
	v.SetDefault("qbittorrent.timeout", "30s")

	// Pause defaults
	v.SetDefault("pause.days_from", 0)
	v.SetDefault("pause.days_to", 2)
	v.SetDefault("pause.status_filter", "completed")
	v.SetDefault("pause.cache_mount", "")
	v.SetDefault("pause.filter", "")

	v.SetDefault("state_file", "./qbit_mover_state.json")
	v.SetDefault("dry_run", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_backups", 3)
}

// validate checks the settings shared by every command
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.QBittorrent.Host) == "" {
		return invalid("qbittorrent.host", "is required (--host)")
	}

	if cfg.QBittorrent.Timeout < 0 {
		return invalid("qbittorrent.timeout", "must not be negative")
	}

	if strings.TrimSpace(cfg.StateFile) == "" {
		return invalid("state_file", "must not be empty")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return invalid("logging.level", "%q (must be debug, info, warn or error)", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return invalid("logging.format", "%q (must be console or json)", cfg.Logging.Format)
	}

	if cfg.Logging.File != "" && cfg.Logging.MaxSize <= 0 {
		return invalid("logging.max_size", "must be positive when logging.file is set")
	}

	return nil
}

// ValidatePause checks the settings only the pause command uses
func (c *Config) ValidatePause() error {
	p := c.Pause

	if p.DaysFrom < 0 || p.DaysTo < 0 {
		return invalid("pause window", "days must not be negative (days_from=%d, days_to=%d)", p.DaysFrom, p.DaysTo)
	}
	if p.DaysFrom > p.DaysTo {
		return &ValidationError{
			Field:   "pause window",
			Message: fmt.Sprintf("days_from (%d) must be set lower than days_to (%d)", p.DaysFrom, p.DaysTo),
			Err:     filter.ErrInvalidWindow,
		}
	}

	if err := qbittorrent.ValidateStatusFilter(p.StatusFilter); err != nil {
		return &ValidationError{
			Field:   "pause.status_filter",
			Message: fmt.Sprintf("must be one of %s", strings.Join(qbittorrent.StatusFilters, ", ")),
			Err:     err,
		}
	}

	if p.Filter != "" {
		if _, err := filter.CompileExprFilter(p.Filter); err != nil {
			return &ValidationError{
				Field:   "pause.filter",
				Message: "expression does not compile",
				Err:     err,
			}
		}
	}

	return nil
}
