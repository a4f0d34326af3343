// Package iostandings reads the official league table from the season
// page of the encyclopedia. It implements pipeline.StandingsSource.
package iostandings

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/edwardanalytics/fpltable/internal/iofetch"
	"github.com/edwardanalytics/fpltable/pkg/config"
	"github.com/edwardanalytics/fpltable/pkg/pipeline"
	"github.com/edwardanalytics/fpltable/pkg/season"
	"github.com/edwardanalytics/fpltable/pkg/standings"
)

type source struct {
	cfg    *config.Config
	client *iofetch.Client
}

// New creates a standings source using the configured page template.
func New(cfg *config.Config, client *iofetch.Client) pipeline.StandingsSource {
	return &source{cfg: cfg, client: client}
}

func (src *source) Standings(
	ctx context.Context,
	s season.Season,
) ([]standings.Entry, error) {
	url := src.cfg.StandingsPageURL(s.Label())
	body, err := src.client.GetHTML(ctx, url)
	if err != nil {
		return nil, err
	}

	res, err := standings.Parse(bytes.NewReader(body))
	if err != nil {
		slog.Error("Cannot extract standings", "season", s.Label(), "url", url)
		return nil, err
	}
	slog.Info("Read standings", "season", s.Label(), "teams", len(res))
	return res, nil
}
