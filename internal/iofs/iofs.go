// Package iofs prepares the application directories and files and
// provides small file helpers shared by the I/O packages.
package iofs

import (
	"os"
	"path/filepath"

	"github.com/edwardanalytics/fpltable/pkg/config"
	"github.com/edwardanalytics/fpltable/pkg/templates"
)

// EnsureDirs creates config, cache, log and default data directories
// under homeDir.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
		config.DataDir(homeDir),
	}
	for _, v := range dirs {
		if err := TouchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// TouchDir creates dir with parents unless it already exists.
func TouchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded config.yaml unless the user
// already has one.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), templates.ConfigYAML)
}

// EnsureMappingFile writes the embedded team_names.yaml unless the user
// already has one.
func EnsureMappingFile(homeDir string) error {
	return ensureFile(config.MappingFilePath(homeDir), templates.TeamNamesYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}

// WriteFileAtomic writes data to a temporary file next to path and
// renames it into place, so readers never see a partial file.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := TouchDir(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return WriteFileError(path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return WriteFileError(path, err)
	}
	if err = tmp.Close(); err != nil {
		return WriteFileError(path, err)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return WriteFileError(path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}
