package config

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Refresh).
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	s = c.Data.Dir
	if s != "" {
		res = append(res, OptDataDir(s))
	}

	s = c.Source.FantasyBaseURL
	if s != "" {
		res = append(res, OptSourceFantasyBaseURL(s))
	}
	s = c.Source.StandingsURL
	if s != "" {
		res = append(res, OptSourceStandingsURL(s))
	}
	s = c.Source.Encoding
	if s != "" {
		res = append(res, OptSourceEncoding(s))
	}
	i = c.Source.Timeout
	if i > 0 {
		res = append(res, OptSourceTimeout(i))
	}
	i = c.Source.RequestsPerSecond
	if i > 0 {
		res = append(res, OptSourceRequestsPerSecond(i))
	}
	s = c.Source.UserAgent
	if s != "" {
		res = append(res, OptSourceUserAgent(s))
	}

	s = c.Export.Driver
	if s != "" {
		res = append(res, OptExportDriver(s))
	}
	s = c.Export.SQLitePath
	if s != "" {
		res = append(res, OptExportSQLitePath(s))
	}
	s = c.Export.Host
	if s != "" {
		res = append(res, OptExportHost(s))
	}
	i = c.Export.Port
	if i > 0 {
		res = append(res, OptExportPort(i))
	}
	s = c.Export.User
	if s != "" {
		res = append(res, OptExportUser(s))
	}
	s = c.Export.Password
	if s != "" {
		res = append(res, OptExportPassword(s))
	}
	s = c.Export.Database
	if s != "" {
		res = append(res, OptExportDatabase(s))
	}
	s = c.Export.SSLMode
	if s != "" {
		res = append(res, OptExportSSLMode(s))
	}
	i = c.Export.BatchSize
	if i > 0 {
		res = append(res, OptExportBatchSize(i))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidURL(name, s string) bool {
	u, err := url.Parse(s)
	res := err == nil && (u.Scheme == "http" || u.Scheme == "https") &&
		u.Host != ""
	if !res {
		gn.Warn("<em>%s</em> is not a valid http(s) URL '%s', ignoring",
			name, s)
	}
	return res
}

func isValidTemplate(name, s string) bool {
	res := strings.Count(s, "%s") == 1 &&
		strings.Count(s, "%") == 1
	if !res {
		gn.Warn("<em>%s</em> needs exactly one %%s for the season, ignoring '%s'",
			name, s)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Source.Encoding": {"iso-8859-1": s, "utf-8": s},
		"Export.Driver":   {"sqlite": s, "postgres": s},
		"Export.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
