// Package ioexport loads joined season tables and player summaries into
// a SQL warehouse. Every season is replaced in its own transaction, so
// running the export twice leaves the same rows.
package ioexport

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/edwardanalytics/fpltable/internal/iodb"
	"github.com/edwardanalytics/fpltable/internal/iostore"
	"github.com/edwardanalytics/fpltable/pkg/config"
	"github.com/edwardanalytics/fpltable/pkg/fantasy"
	"github.com/edwardanalytics/fpltable/pkg/pipeline"
	"github.com/edwardanalytics/fpltable/pkg/schema"
	"github.com/edwardanalytics/fpltable/pkg/season"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
)

// target is a warehouse backend.
type target interface {
	// migrate creates or updates the warehouse tables.
	migrate(ctx context.Context) error

	// replace swaps all rows of a season in one transaction.
	replace(
		ctx context.Context,
		season string,
		joined []schema.JoinedTable,
		players []schema.PlayerSummary,
	) error

	close() error
}

type exporter struct {
	store    pipeline.Store
	target   target
	batchID  string
	progress bool
}

// New connects to the configured warehouse and prepares its tables.
func New(
	ctx context.Context,
	cfg *config.Config,
	store pipeline.Store,
) (pipeline.Exporter, error) {
	var t target
	var err error

	switch cfg.Export.Driver {
	case "sqlite":
		t, err = newSQLite(ctx, cfg.SQLitePath())
	case "postgres":
		op := iodb.NewPgxOperator()
		if err = op.Connect(ctx, &cfg.Export); err != nil {
			return nil, err
		}
		t = newPostgres(op, cfg.Export.BatchSize)
	default:
		return nil, ExportDriverError(cfg.Export.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = t.migrate(ctx); err != nil {
		t.close()
		return nil, err
	}

	return &exporter{
		store:    store,
		target:   t,
		batchID:  uuid.NewString(),
		progress: true,
	}, nil
}

func (e *exporter) Export(ctx context.Context) (int, error) {
	startTime := time.Now()
	labels, err := e.store.ListJoinedSeasons()
	if err != nil {
		return 0, err
	}
	if len(labels) == 0 {
		gn.Warn("No joined tables to export, run <em>fpltable join</em> first")
		return 0, nil
	}

	log := slog.With("batch_id", e.batchID)
	log.Info("Starting export", "seasons", len(labels))

	var bar *pb.ProgressBar
	if e.progress {
		bar = pb.Full.Start(len(labels))
		bar.Set("prefix", "Exporting seasons: ")
		bar.Set(pb.CleanOnFinish, true)
	}

	var rowNum int
	for _, label := range labels {
		n, err := e.exportSeason(ctx, label)
		if err != nil {
			if bar != nil {
				bar.Finish()
			}
			return 0, err
		}
		rowNum += n
		log.Info("Exported season", "season", label, "rows", n)
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	dur := gnfmt.TimeString(time.Since(startTime).Seconds())
	log.Info("Export complete", "seasons", len(labels), "rows", rowNum,
		"duration", dur)
	gn.Info("Exported <em>%d</em> seasons, <em>%s</em> rows in <em>%s</em>",
		len(labels), humanize.Comma(int64(rowNum)), dur)
	return len(labels), nil
}

func (e *exporter) exportSeason(ctx context.Context, label string) (int, error) {
	s, err := season.Parse(label)
	if err != nil {
		return 0, err
	}

	rows, err := e.store.ReadJoined(s)
	if err != nil {
		return 0, err
	}

	players, err := e.store.ReadPlayers(s)
	if iostore.IsMissing(err) {
		slog.Warn("No player summaries for season", "season", label)
		players, err = []fantasy.PlayerSummary{}, nil
	}
	if err != nil {
		return 0, err
	}

	joined := schema.NewJoinedTables(label, e.batchID, rows)
	ps := schema.NewPlayerSummaries(label, e.batchID, players)
	if err = e.target.replace(ctx, label, joined, ps); err != nil {
		return 0, err
	}
	return len(joined) + len(ps), nil
}

func (e *exporter) Close() error {
	return e.target.close()
}
