// Package iomapping loads the team name mapping from team_names.yaml.
package iomapping

import (
	"errors"
	"log/slog"
	"os"

	"github.com/edwardanalytics/fpltable/pkg/config"
	"github.com/edwardanalytics/fpltable/pkg/reconcile"
	"gopkg.in/yaml.v3"
)

// Load reads the mapping of the config directory.
func Load(cfg *config.Config) (reconcile.Mapping, error) {
	return LoadFile(config.MappingFilePath(cfg.HomeDir))
}

// LoadFile reads a YAML dictionary of fantasy team name to standings
// team name. An empty mapping is an error, because every joined table
// would come out empty.
func LoadFile(path string) (reconcile.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return reconcile.Mapping{}, MappingReadError(path, err)
	}

	var names map[string]string
	if err = yaml.Unmarshal(data, &names); err != nil {
		return reconcile.Mapping{}, MappingReadError(path, err)
	}

	res := reconcile.NewMapping(names)
	if res.Len() == 0 {
		return reconcile.Mapping{}, MappingEmptyError(path)
	}
	if res.Len() < len(names) {
		slog.Warn("Ignored mapping entries with an empty name",
			"path", path,
			"ignored", len(names)-res.Len())
	}
	slog.Info("Loaded team name mapping", "path", path, "entries", res.Len())
	return res, nil
}

var errEmpty = errors.New("mapping has no entries")
