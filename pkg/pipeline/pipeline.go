// Package pipeline defines the contracts between the pure data-join
// packages and the I/O adapters in internal/. Implementations receive
// their configuration during construction.
package pipeline

import (
	"context"

	"github.com/edwardanalytics/fpltable/pkg/fantasy"
	"github.com/edwardanalytics/fpltable/pkg/join"
	"github.com/edwardanalytics/fpltable/pkg/season"
	"github.com/edwardanalytics/fpltable/pkg/standings"
)

// FantasySource provides per-gameweek fantasy records.
type FantasySource interface {
	// CurrentGameweek returns the latest scored gameweek of a season.
	// It fails with NoGameweekDataError when the season has no scored
	// gameweek yet.
	CurrentGameweek(ctx context.Context, s season.Season) (int, error)

	// Records returns every player gameweek record of a season with
	// positions and team names resolved.
	Records(ctx context.Context, s season.Season) ([]fantasy.Record, error)
}

// StandingsSource provides the official league table of a season.
type StandingsSource interface {
	Standings(ctx context.Context, s season.Season) ([]standings.Entry, error)
}

// Store persists season artifacts. Every Write replaces the whole
// artifact of the season. Reads of an absent artifact fail with
// ArtifactMissingError.
type Store interface {
	WriteTeams(s season.Season, teams []fantasy.TeamSummary) error
	ReadTeams(s season.Season) ([]fantasy.TeamSummary, error)

	WritePlayers(s season.Season, players []fantasy.PlayerSummary) error
	ReadPlayers(s season.Season) ([]fantasy.PlayerSummary, error)

	WriteStandings(s season.Season, table []standings.Entry) error
	ReadStandings(s season.Season) ([]standings.Entry, error)

	WriteJoined(s season.Season, rows []join.Row) error
	ReadJoined(s season.Season) ([]join.Row, error)

	// ListFantasySeasons returns labels of seasons that have a team
	// summary artifact.
	ListFantasySeasons() ([]string, error)

	// ListJoinedSeasons returns labels of seasons that have a joined
	// table artifact.
	ListJoinedSeasons() ([]string, error)
}

// Refresher runs the fetch, aggregate and join pipeline.
type Refresher interface {
	// Refresh ingests the current season if a new gameweek was scored,
	// then joins all seasons. It returns false when there was nothing
	// new to ingest.
	Refresh(ctx context.Context) (bool, error)

	// Backfill ingests completed seasons from first to last start year,
	// isolating failures per season, then joins all seasons.
	Backfill(ctx context.Context, first, last int) error

	// JoinAll re-joins every season that has fantasy artifacts.
	JoinAll(ctx context.Context) error

	// JoinSeason joins one season from stored artifacts.
	JoinSeason(ctx context.Context, s season.Season) (join.Report, error)
}

// Exporter loads joined tables and player summaries into a SQL
// warehouse.
type Exporter interface {
	// Export replaces warehouse rows of every stored season. It returns
	// the number of exported seasons.
	Export(ctx context.Context) (int, error)

	// Close releases the warehouse connection.
	Close() error
}
