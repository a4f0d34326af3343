package fantasy

import (
	"strconv"

	"github.com/edwardanalytics/fpltable/pkg/tabular"
)

// statColumns are the gameweek columns summed into Stats, in the order
// of the Stats fields.
var statColumns = []string{
	"total_points",
	"goals_scored",
	"assists",
	"clean_sheets",
	"yellow_cards",
	"red_cards",
	"goals_conceded",
	"own_goals",
	"penalties_missed",
	"penalties_saved",
	"saves",
	"bonus",
}

// TeamColumns is the header of the team summary artifact.
var TeamColumns = []string{
	"team",
	"total_points",
	"gk_points",
	"def_points",
	"mid_points",
	"fwd_points",
	"goals_scored",
	"assists",
	"clean_sheets",
	"yellow_cards",
	"red_cards",
	"goals_conceded",
	"own_goals",
	"penalties_missed",
	"penalties_saved",
	"saves",
	"bonus_points",
	"value_latest_gw",
}

// PlayerColumns is the header of the player summary artifact.
var PlayerColumns = []string{
	"name",
	"team",
	"total_points",
	"position",
	"goals_scored",
	"assists",
	"clean_sheets",
	"yellow_cards",
	"red_cards",
	"goals_conceded",
	"own_goals",
	"penalties_missed",
	"penalties_saved",
	"saves",
	"bonus_points",
}

func (s *Stats) fields() []*int {
	return []*int{
		&s.TotalPoints, &s.GoalsScored, &s.Assists, &s.CleanSheets,
		&s.YellowCards, &s.RedCards, &s.GoalsConceded, &s.OwnGoals,
		&s.PenaltiesMissed, &s.PenaltiesSaved, &s.Saves, &s.Bonus,
	}
}

// readStats fills stats from columns. The last column is the bonus,
// which has a different name in gameweek tables and summaries.
func readStats(
	cols tabular.Columns,
	row []string,
	names []string,
) (Stats, error) {
	var res Stats
	for i, p := range res.fields() {
		v, err := cols.Int(row, names[i])
		if err != nil {
			return Stats{}, err
		}
		*p = v
	}
	return res, nil
}

// ParseRecords converts a merged gameweek table into records. The
// position, team and element columns are optional; without a position
// column records are returned with empty positions, to be filled by
// ResolvePositions.
func ParseRecords(header []string, rows [][]string) ([]Record, error) {
	cols := tabular.NewColumns(header)
	required := append([]string{"name", "GW", "value"}, statColumns...)
	if err := cols.Require(required...); err != nil {
		return nil, err
	}
	hasPosition := cols.Has("position")

	res := make([]Record, 0, len(rows))
	for _, row := range rows {
		var r Record
		var err error
		r.Name = cols.String(row, "name")
		if r.GW, err = cols.Int(row, "GW"); err != nil {
			return nil, err
		}
		if r.Value, err = cols.Float(row, "value"); err != nil {
			return nil, err
		}
		if r.Element, err = cols.Int(row, "element"); err != nil {
			return nil, err
		}
		if r.Stats, err = readStats(cols, row, statColumns); err != nil {
			return nil, err
		}
		if hasPosition {
			r.Team = cols.String(row, "team")
			r.Position = Position(cols.String(row, "position"))
			if r.Position == "" {
				r.Position = Unknown
			}
		}
		res = append(res, r)
	}
	return res, nil
}

// ParsePlayerMeta reads the id, team and element_type columns of
// per-season player metadata.
func ParsePlayerMeta(header []string, rows [][]string) ([]PlayerMeta, error) {
	cols := tabular.NewColumns(header)
	if err := cols.Require("id", "team", "element_type"); err != nil {
		return nil, err
	}
	res := make([]PlayerMeta, 0, len(rows))
	for _, row := range rows {
		var m PlayerMeta
		var err error
		if m.ID, err = cols.Int(row, "id"); err != nil {
			return nil, err
		}
		if m.TeamID, err = cols.Int(row, "team"); err != nil {
			return nil, err
		}
		if m.ElementType, err = cols.Int(row, "element_type"); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, nil
}

// ParseTeamNames reads the season, team and team_name columns of the
// master team list.
func ParseTeamNames(header []string, rows [][]string) ([]TeamName, error) {
	cols := tabular.NewColumns(header)
	if err := cols.Require("season", "team", "team_name"); err != nil {
		return nil, err
	}
	res := make([]TeamName, 0, len(rows))
	for _, row := range rows {
		id, err := cols.Int(row, "team")
		if err != nil {
			return nil, err
		}
		res = append(res, TeamName{
			Season: cols.String(row, "season"),
			TeamID: id,
			Name:   cols.String(row, "team_name"),
		})
	}
	return res, nil
}

// Row renders the team summary in TeamColumns order.
func (t TeamSummary) Row() []string {
	res := make([]string, 0, len(TeamColumns))
	res = append(res, t.Team, strconv.Itoa(t.TotalPoints),
		strconv.Itoa(t.Points.GK), strconv.Itoa(t.Points.DEF),
		strconv.Itoa(t.Points.MID), strconv.Itoa(t.Points.FWD),
	)
	st := t.Stats
	for _, p := range st.fields()[1:] {
		res = append(res, strconv.Itoa(*p))
	}
	val := ""
	if t.HasValue {
		val = tabular.FormatFloat(t.ValueLatestGW)
	}
	return append(res, val)
}

// Row renders the player summary in PlayerColumns order.
func (p PlayerSummary) Row() []string {
	res := make([]string, 0, len(PlayerColumns))
	res = append(res, p.Name, p.Team, strconv.Itoa(p.TotalPoints),
		string(p.Position))
	st := p.Stats
	for _, v := range st.fields()[1:] {
		res = append(res, strconv.Itoa(*v))
	}
	return res
}

// summaryStatColumns are the Stats columns of summary artifacts.
var summaryStatColumns = append(
	append([]string{}, statColumns[:len(statColumns)-1]...),
	"bonus_points",
)

// ParseTeamSummaries reads a team summary artifact.
func ParseTeamSummaries(header []string, rows [][]string) ([]TeamSummary, error) {
	cols := tabular.NewColumns(header)
	if err := cols.Require(TeamColumns[:len(TeamColumns)-1]...); err != nil {
		return nil, err
	}
	res := make([]TeamSummary, 0, len(rows))
	for _, row := range rows {
		var t TeamSummary
		var err error
		t.Team = cols.String(row, "team")
		if t.Stats, err = readStats(cols, row, summaryStatColumns); err != nil {
			return nil, err
		}
		pp := []*int{&t.Points.GK, &t.Points.DEF, &t.Points.MID, &t.Points.FWD}
		for i, name := range []string{"gk_points", "def_points", "mid_points", "fwd_points"} {
			if *pp[i], err = cols.Int(row, name); err != nil {
				return nil, err
			}
		}
		if cols.String(row, "value_latest_gw") != "" {
			if t.ValueLatestGW, err = cols.Float(row, "value_latest_gw"); err != nil {
				return nil, err
			}
			t.HasValue = true
		}
		res = append(res, t)
	}
	return res, nil
}

// ParsePlayerSummaries reads a player summary artifact.
func ParsePlayerSummaries(header []string, rows [][]string) ([]PlayerSummary, error) {
	cols := tabular.NewColumns(header)
	if err := cols.Require(PlayerColumns...); err != nil {
		return nil, err
	}
	res := make([]PlayerSummary, 0, len(rows))
	for _, row := range rows {
		p := PlayerSummary{
			Name:     cols.String(row, "name"),
			Team:     cols.String(row, "team"),
			Position: Position(cols.String(row, "position")),
		}
		var err error
		if p.Stats, err = readStats(cols, row, summaryStatColumns); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}
