// Package schema provides warehouse models of the export. The same
// struct tags drive GORM AutoMigrate on PostgreSQL, the generated DDL on
// SQLite and the column lists of bulk inserts.
package schema

import (
	"github.com/edwardanalytics/fpltable/pkg/fantasy"
	"github.com/edwardanalytics/fpltable/pkg/join"
)

// Model is a warehouse table.
type Model interface {
	// TableName returns the table name for this model.
	TableName() string

	// TableDDL returns the SQLite CREATE TABLE statement.
	TableDDL() string

	// IndexDDL returns SQLite CREATE INDEX statements.
	IndexDDL() []string
}

// JoinedTable is a row of the joined season table.
type JoinedTable struct {
	// Season is the label of the season, for example "2023-24".
	Season string `db:"season" ddl:"TEXT NOT NULL" gorm:"column:season;type:varchar(7);not null;index"`

	// BatchID identifies the export run that wrote the row.
	BatchID string `db:"batch_id" ddl:"TEXT NOT NULL" gorm:"column:batch_id;type:varchar(36);not null"`

	Pos             int    `db:"pos" ddl:"INTEGER NOT NULL" gorm:"column:pos;not null"`
	Team            string `db:"team" ddl:"TEXT NOT NULL" gorm:"column:team;type:varchar(100);not null"`
	Points          int    `db:"points" ddl:"INTEGER NOT NULL" gorm:"column:points;not null"`
	ActualPos       int    `db:"actual_pos" ddl:"INTEGER NOT NULL" gorm:"column:actual_pos;not null"`
	Difference      string `db:"difference" ddl:"TEXT NOT NULL" gorm:"column:difference;type:varchar(20);not null"`
	GKPoints        int    `db:"gk_points" ddl:"INTEGER NOT NULL" gorm:"column:gk_points;not null"`
	DEFPoints       int    `db:"def_points" ddl:"INTEGER NOT NULL" gorm:"column:def_points;not null"`
	MIDPoints       int    `db:"mid_points" ddl:"INTEGER NOT NULL" gorm:"column:mid_points;not null"`
	FWDPoints       int    `db:"fwd_points" ddl:"INTEGER NOT NULL" gorm:"column:fwd_points;not null"`
	GoalsScored     int    `db:"goals_scored" ddl:"INTEGER NOT NULL" gorm:"column:goals_scored;not null"`
	Assists         int    `db:"assists" ddl:"INTEGER NOT NULL" gorm:"column:assists;not null"`
	CleanSheets     int    `db:"clean_sheets" ddl:"INTEGER NOT NULL" gorm:"column:clean_sheets;not null"`
	YellowCards     int    `db:"yellow_cards" ddl:"INTEGER NOT NULL" gorm:"column:yellow_cards;not null"`
	RedCards        int    `db:"red_cards" ddl:"INTEGER NOT NULL" gorm:"column:red_cards;not null"`
	GoalsConceded   int    `db:"goals_conceded" ddl:"INTEGER NOT NULL" gorm:"column:goals_conceded;not null"`
	OwnGoals        int    `db:"own_goals" ddl:"INTEGER NOT NULL" gorm:"column:own_goals;not null"`
	PenaltiesMissed int    `db:"penalties_missed" ddl:"INTEGER NOT NULL" gorm:"column:penalties_missed;not null"`
	PenaltiesSaved  int    `db:"penalties_saved" ddl:"INTEGER NOT NULL" gorm:"column:penalties_saved;not null"`
	Saves           int    `db:"saves" ddl:"INTEGER NOT NULL" gorm:"column:saves;not null"`
	BonusPoints     int    `db:"bonus_points" ddl:"INTEGER NOT NULL" gorm:"column:bonus_points;not null"`
}

// PlayerSummary is a row of the season player summary. Every player
// also appears under the "All Teams" team.
type PlayerSummary struct {
	Season  string `db:"season" ddl:"TEXT NOT NULL" gorm:"column:season;type:varchar(7);not null;index"`
	BatchID string `db:"batch_id" ddl:"TEXT NOT NULL" gorm:"column:batch_id;type:varchar(36);not null"`

	Name            string `db:"name" ddl:"TEXT NOT NULL" gorm:"column:name;type:varchar(255);not null"`
	Team            string `db:"team" ddl:"TEXT NOT NULL" gorm:"column:team;type:varchar(100);not null;index"`
	TotalPoints     int    `db:"total_points" ddl:"INTEGER NOT NULL" gorm:"column:total_points;not null"`
	Position        string `db:"position" ddl:"TEXT NOT NULL" gorm:"column:position;type:varchar(10);not null"`
	GoalsScored     int    `db:"goals_scored" ddl:"INTEGER NOT NULL" gorm:"column:goals_scored;not null"`
	Assists         int    `db:"assists" ddl:"INTEGER NOT NULL" gorm:"column:assists;not null"`
	CleanSheets     int    `db:"clean_sheets" ddl:"INTEGER NOT NULL" gorm:"column:clean_sheets;not null"`
	YellowCards     int    `db:"yellow_cards" ddl:"INTEGER NOT NULL" gorm:"column:yellow_cards;not null"`
	RedCards        int    `db:"red_cards" ddl:"INTEGER NOT NULL" gorm:"column:red_cards;not null"`
	GoalsConceded   int    `db:"goals_conceded" ddl:"INTEGER NOT NULL" gorm:"column:goals_conceded;not null"`
	OwnGoals        int    `db:"own_goals" ddl:"INTEGER NOT NULL" gorm:"column:own_goals;not null"`
	PenaltiesMissed int    `db:"penalties_missed" ddl:"INTEGER NOT NULL" gorm:"column:penalties_missed;not null"`
	PenaltiesSaved  int    `db:"penalties_saved" ddl:"INTEGER NOT NULL" gorm:"column:penalties_saved;not null"`
	Saves           int    `db:"saves" ddl:"INTEGER NOT NULL" gorm:"column:saves;not null"`
	BonusPoints     int    `db:"bonus_points" ddl:"INTEGER NOT NULL" gorm:"column:bonus_points;not null"`
}

// NewJoinedTables converts joined rows of a season.
func NewJoinedTables(season, batchID string, rows []join.Row) []JoinedTable {
	res := make([]JoinedTable, 0, len(rows))
	for _, r := range rows {
		res = append(res, JoinedTable{
			Season:          season,
			BatchID:         batchID,
			Pos:             r.Pos,
			Team:            r.Team,
			Points:          r.TotalPoints,
			ActualPos:       r.ActualPos,
			Difference:      r.Difference,
			GKPoints:        r.Points.GK,
			DEFPoints:       r.Points.DEF,
			MIDPoints:       r.Points.MID,
			FWDPoints:       r.Points.FWD,
			GoalsScored:     r.GoalsScored,
			Assists:         r.Assists,
			CleanSheets:     r.CleanSheets,
			YellowCards:     r.YellowCards,
			RedCards:        r.RedCards,
			GoalsConceded:   r.GoalsConceded,
			OwnGoals:        r.OwnGoals,
			PenaltiesMissed: r.PenaltiesMissed,
			PenaltiesSaved:  r.PenaltiesSaved,
			Saves:           r.Saves,
			BonusPoints:     r.Bonus,
		})
	}
	return res
}

// NewPlayerSummaries converts player summaries of a season.
func NewPlayerSummaries(
	season, batchID string,
	players []fantasy.PlayerSummary,
) []PlayerSummary {
	res := make([]PlayerSummary, 0, len(players))
	for _, p := range players {
		res = append(res, PlayerSummary{
			Season:          season,
			BatchID:         batchID,
			Name:            p.Name,
			Team:            p.Team,
			TotalPoints:     p.TotalPoints,
			Position:        string(p.Position),
			GoalsScored:     p.GoalsScored,
			Assists:         p.Assists,
			CleanSheets:     p.CleanSheets,
			YellowCards:     p.YellowCards,
			RedCards:        p.RedCards,
			GoalsConceded:   p.GoalsConceded,
			OwnGoals:        p.OwnGoals,
			PenaltiesMissed: p.PenaltiesMissed,
			PenaltiesSaved:  p.PenaltiesSaved,
			Saves:           p.Saves,
			BonusPoints:     p.Bonus,
		})
	}
	return res
}
