// Package config provides configuration management for fpltable.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Data: dir
//   - Source: fantasy_base_url, standings_url, encoding, timeout,
//     requests_per_second, user_agent
//   - Export: driver, sqlite_path, host, port, user, password, database,
//     ssl_mode, batch_size
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Refresh.Force, Refresh.SkipFantasy, Refresh.SkipStandings (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use FPLTABLE_ prefix with underscores for nesting:
//
//	FPLTABLE_DATA_DIR=/srv/fpl/data
//	FPLTABLE_SOURCE_ENCODING=utf-8
//	FPLTABLE_EXPORT_DRIVER=postgres
//	FPLTABLE_LOG_LEVEL=debug
package config

import (
	"fmt"
	"path/filepath"
)

// Config represents the complete fpltable configuration.
type Config struct {
	// Data points to the artifact directory.
	Data DataConfig `mapstructure:"data" yaml:"data"`

	// Source contains settings of the upstream data providers.
	Source SourceConfig `mapstructure:"source" yaml:"source"`

	// Export contains warehouse settings of the export command.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Refresh holds per-command switches of refresh and backfill.
	Refresh RefreshConfig `mapstructure:"-" yaml:"-"`

	// HomeDir determines where config, cache, data and logs directories
	// reside. It must be set by CLI during init, there is no default value
	// for it.
	HomeDir string
}

// DataConfig describes where artifacts are stored.
type DataConfig struct {
	// Dir is the root of the season artifacts. Empty means the default
	// location under HomeDir, see DataDir.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// SourceConfig describes the upstream providers.
type SourceConfig struct {
	// FantasyBaseURL is the root of the per-season fantasy CSV files.
	FantasyBaseURL string `mapstructure:"fantasy_base_url" yaml:"fantasy_base_url"`

	// StandingsURL is a template of the standings page with a single %s
	// placeholder for the season label.
	StandingsURL string `mapstructure:"standings_url" yaml:"standings_url"`

	// Encoding of fantasy CSV files.
	// Valid values: "iso-8859-1", "utf-8"
	Encoding string `mapstructure:"encoding" yaml:"encoding"`

	// Timeout is the limit of one HTTP request in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`

	// RequestsPerSecond limits how often upstream hosts are hit.
	RequestsPerSecond int `mapstructure:"requests_per_second" yaml:"requests_per_second"`

	// UserAgent is sent with every request. Some hosts reject requests
	// without one.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
}

// ExportConfig contains warehouse connection parameters.
type ExportConfig struct {
	// Driver selects the warehouse.
	// Valid values: "sqlite", "postgres"
	Driver string `mapstructure:"driver" yaml:"driver"`

	// SQLitePath is the database file for the sqlite driver. Empty means
	// fpltable.sqlite in the data directory.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows per insert batch.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// RefreshConfig holds runtime switches of refresh and backfill.
type RefreshConfig struct {
	// Force runs the pipeline even if the gameweek was already ingested.
	Force bool
	// SkipFantasy skips fetching fantasy data during backfill.
	SkipFantasy bool
	// SkipStandings skips fetching standings during backfill.
	SkipStandings bool
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Source: SourceConfig{
			FantasyBaseURL: "https://raw.githubusercontent.com/" +
				"vaastav/Fantasy-Premier-League/master/data",
			StandingsURL:      "https://en.wikipedia.org/wiki/%s_Premier_League",
			Encoding:          "iso-8859-1",
			Timeout:           60,
			RequestsPerSecond: 2,
			UserAgent:         "fpltable (+https://github.com/edwardanalytics/fpltable)",
		},
		Export: ExportConfig{
			Driver:    "sqlite",
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "fpltable",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
	}

	return res
}

// DataPath returns the artifact directory: Data.Dir when it is set,
// DataDir(HomeDir) otherwise.
func (c *Config) DataPath() string {
	if c.Data.Dir != "" {
		return c.Data.Dir
	}
	return DataDir(c.HomeDir)
}

// SQLitePath returns the export database file for the sqlite driver.
func (c *Config) SQLitePath() string {
	if c.Export.SQLitePath != "" {
		return c.Export.SQLitePath
	}
	return filepath.Join(c.DataPath(), AppName+".sqlite")
}

// StandingsPageURL returns the standings page of a season label.
func (c *Config) StandingsPageURL(label string) string {
	return fmt.Sprintf(c.Source.StandingsURL, label)
}
