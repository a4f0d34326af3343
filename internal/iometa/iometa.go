// Package iometa keeps the metadata gate state in a JSON file.
package iometa

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/edwardanalytics/fpltable/internal/iofs"
	"github.com/edwardanalytics/fpltable/pkg/meta"
)

// FileName is the name of the gate file inside the data directory.
const FileName = "scoring_meta.json"

type gate struct {
	path string
}

// New creates a gate backed by scoring_meta.json in dataDir.
func New(dataDir string) meta.Gate {
	return &gate{path: filepath.Join(dataDir, FileName)}
}

func (g *gate) Check(ctx context.Context, current int) (bool, error) {
	stored, err := g.load()
	if err != nil {
		return false, err
	}
	if meta.IsCurrent(stored, current) {
		slog.Info("Scoring data is up to date", "gameweek", current)
		return false, nil
	}
	if err = g.Record(ctx, current); err != nil {
		return false, err
	}
	return true, nil
}

func (g *gate) Record(_ context.Context, current int) error {
	data, err := json.Marshal(meta.ScoringMeta{ScoringDataGameweek: current})
	if err != nil {
		return MetaWriteError(g.path, err)
	}
	if err = iofs.WriteFileAtomic(g.path, data); err != nil {
		return MetaWriteError(g.path, err)
	}
	slog.Info("Recorded scoring gameweek", "gameweek", current)
	return nil
}

// load returns nil state when the file does not exist yet.
func (g *gate) load() (*meta.ScoringMeta, error) {
	data, err := os.ReadFile(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("No scoring metadata, treating as never processed",
			"path", g.path)
		return nil, nil
	}
	if err != nil {
		return nil, MetaReadError(g.path, err)
	}

	var res meta.ScoringMeta
	if err = json.Unmarshal(data, &res); err != nil {
		return nil, MetaReadError(g.path, err)
	}
	return &res, nil
}
