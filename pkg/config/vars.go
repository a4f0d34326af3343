package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "fpltable"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/fpltable by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/fpltable by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/fpltable/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// DataDir returns the default directory of season artifacts.
// Returns ~/.local/share/fpltable/data by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "data")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/fpltable/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// MappingFilePath returns the full path to the team name mapping.
// Returns ~/.config/fpltable/team_names.yaml by default.
func MappingFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "team_names.yaml")
}
