// Package iofantasy reads per-gameweek fantasy data from the community
// archive of FPL seasons. It implements pipeline.FantasySource.
package iofantasy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edwardanalytics/fpltable/internal/iofetch"
	"github.com/edwardanalytics/fpltable/pkg/config"
	"github.com/edwardanalytics/fpltable/pkg/fantasy"
	"github.com/edwardanalytics/fpltable/pkg/pipeline"
	"github.com/edwardanalytics/fpltable/pkg/season"
	"github.com/edwardanalytics/fpltable/pkg/tabular"
)

type source struct {
	base   string
	client *iofetch.Client
}

// New creates a fantasy source using the configured base URL.
func New(cfg *config.Config, client *iofetch.Client) pipeline.FantasySource {
	return &source{base: cfg.Source.FantasyBaseURL, client: client}
}

// MergedGameweeksURL returns the location of all gameweeks of a season.
func MergedGameweeksURL(base string, s season.Season) string {
	return fmt.Sprintf("%s/%s/gws/merged_gw.csv", base, s.Label())
}

// PlayersURL returns the location of player metadata of a season.
func PlayersURL(base string, s season.Season) string {
	return fmt.Sprintf("%s/%s/players_raw.csv", base, s.Label())
}

// TeamListURL returns the location of the team list of all seasons.
func TeamListURL(base string) string {
	return base + "/master_team_list.csv"
}

func (src *source) CurrentGameweek(
	ctx context.Context,
	s season.Season,
) (int, error) {
	header, rows, err := src.client.GetCSV(ctx, MergedGameweeksURL(src.base, s))
	if iofetch.IsNotFound(err) {
		return 0, NoGameweekDataError(s.Label())
	}
	if err != nil {
		return 0, err
	}

	cols := tabular.NewColumns(header)
	if err = cols.Require("GW"); err != nil {
		return 0, err
	}
	var res int
	for _, row := range rows {
		gw, err := cols.Int(row, "GW")
		if err != nil {
			return 0, err
		}
		res = max(res, gw)
	}
	if res == 0 {
		return 0, NoGameweekDataError(s.Label())
	}
	return res, nil
}

func (src *source) Records(
	ctx context.Context,
	s season.Season,
) ([]fantasy.Record, error) {
	header, rows, err := src.client.GetCSV(ctx, MergedGameweeksURL(src.base, s))
	if err != nil {
		return nil, err
	}
	recs, err := fantasy.ParseRecords(header, rows)
	if err != nil {
		return nil, err
	}
	slog.Info("Read gameweek records",
		"season", s.Label(),
		"records", len(recs),
		"max_gw", fantasy.MaxGameweek(recs),
	)

	if !fantasy.NeedsPositions(recs) {
		return recs, nil
	}

	slog.Info("Gameweek table has no positions, reading player metadata",
		"season", s.Label())
	header, rows, err = src.client.GetCSV(ctx, PlayersURL(src.base, s))
	if err != nil {
		return nil, err
	}
	players, err := fantasy.ParsePlayerMeta(header, rows)
	if err != nil {
		return nil, err
	}

	header, rows, err = src.client.GetCSV(ctx, TeamListURL(src.base))
	if err != nil {
		return nil, err
	}
	teams, err := fantasy.ParseTeamNames(header, rows)
	if err != nil {
		return nil, err
	}

	return fantasy.ResolvePositions(recs, players, teams, s.Label()), nil
}
