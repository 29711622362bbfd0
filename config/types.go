package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	QBittorrent QBittorrentConfig `mapstructure:"qbittorrent"`
	Pause       PauseConfig       `mapstructure:"pause"`
	StateFile   string            `mapstructure:"state_file"`
	DryRun      bool              `mapstructure:"dry_run"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// QBittorrentConfig holds qBittorrent Web UI connection details
type QBittorrentConfig struct {
	Host          string        `mapstructure:"host"`
	User          string        `mapstructure:"user"`
	Password      string        `mapstructure:"password"`
	BasicUser     string        `mapstructure:"basic_user"`
	BasicPass     string        `mapstructure:"basic_pass"`
	TLSSkipVerify bool          `mapstructure:"tls_skip_verify"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// PauseConfig controls which torrents the pause phase selects
type PauseConfig struct {
	DaysFrom     int    `mapstructure:"days_from"`
	DaysTo       int    `mapstructure:"days_to"`
	StatusFilter string `mapstructure:"status_filter"`
	CacheMount   string `mapstructure:"cache_mount"`
	Filter       string `mapstructure:"filter"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Color      bool   `mapstructure:"color"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
}
