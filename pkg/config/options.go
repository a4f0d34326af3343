package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDataDir sets the root directory of season artifacts.
func OptDataDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data Dir", s) {
			c.Data.Dir = s
		}
	}
}

// OptSourceFantasyBaseURL sets the root URL of fantasy CSV files.
// A trailing slash is removed.
func OptSourceFantasyBaseURL(s string) Option {
	s = strings.TrimRight(strings.TrimSpace(s), "/")
	return func(c *Config) {
		if isValidURL("Source Fantasy Base URL", s) {
			c.Source.FantasyBaseURL = s
		}
	}
}

// OptSourceStandingsURL sets the standings page template. It must
// contain exactly one %s for the season label.
func OptSourceStandingsURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Source Standings URL", s) &&
			isValidTemplate("Source Standings URL", s) {
			c.Source.StandingsURL = s
		}
	}
}

// OptSourceEncoding sets the character encoding of fantasy CSV files.
// Valid values: "iso-8859-1", "utf-8".
func OptSourceEncoding(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Source.Encoding", s) {
			c.Source.Encoding = s
		}
	}
}

// OptSourceTimeout sets the HTTP request timeout in seconds.
func OptSourceTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Source Timeout", i) {
			c.Source.Timeout = i
		}
	}
}

// OptSourceRequestsPerSecond sets the upstream request rate.
func OptSourceRequestsPerSecond(i int) Option {
	return func(c *Config) {
		if isValidInt("Source Requests Per Second", i) {
			c.Source.RequestsPerSecond = i
		}
	}
}

// OptSourceUserAgent sets the User-Agent header of requests.
func OptSourceUserAgent(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Source User Agent", s) {
			c.Source.UserAgent = s
		}
	}
}

// OptExportDriver sets the warehouse kind.
// Valid values: "sqlite", "postgres".
func OptExportDriver(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Export.Driver", s) {
			c.Export.Driver = s
		}
	}
}

// OptExportSQLitePath sets the sqlite warehouse file.
func OptExportSQLitePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export SQLite Path", s) {
			c.Export.SQLitePath = s
		}
	}
}

// OptExportHost sets the PostgreSQL server hostname or IP address.
func OptExportHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export Host", s) {
			c.Export.Host = s
		}
	}
}

// OptExportPort sets the PostgreSQL server port number.
func OptExportPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Export Port", i) {
			c.Export.Port = i
		}
	}
}

// OptExportUser sets the PostgreSQL database username.
func OptExportUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export User", s) {
			c.Export.User = s
		}
	}
}

// OptExportPassword sets the PostgreSQL database password.
func OptExportPassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export Password", s) {
			c.Export.Password = s
		}
	}
}

// OptExportDatabase sets the PostgreSQL database name to connect to.
func OptExportDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export Database", s) {
			c.Export.Database = s
		}
	}
}

// OptExportSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptExportSSLMode(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Export.SSLMode", s) {
			c.Export.SSLMode = s
		}
	}
}

// OptExportBatchSize sets the number of rows per insert batch.
func OptExportBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Export Batch Size", i) {
			c.Export.BatchSize = i
		}
	}
}

// OptRefreshForce makes refresh ignore the metadata gate.
// Runtime-only field - not in ToOptions().
func OptRefreshForce(b bool) Option {
	return func(c *Config) {
		c.Refresh.Force = b
	}
}

// OptRefreshSkipFantasy makes backfill keep existing fantasy artifacts.
// Runtime-only field - not in ToOptions().
func OptRefreshSkipFantasy(b bool) Option {
	return func(c *Config) {
		c.Refresh.SkipFantasy = b
	}
}

// OptRefreshSkipStandings makes backfill keep existing standings.
// Runtime-only field - not in ToOptions().
func OptRefreshSkipStandings(b bool) Option {
	return func(c *Config) {
		c.Refresh.SkipStandings = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, cache, data and log
// locations. Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
