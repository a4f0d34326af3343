package join_test

import (
	"testing"

	"github.com/edwardanalytics/fpltable/pkg/fantasy"
	"github.com/edwardanalytics/fpltable/pkg/join"
	"github.com/edwardanalytics/fpltable/pkg/reconcile"
	"github.com/edwardanalytics/fpltable/pkg/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func team(name string, pts int) fantasy.TeamSummary {
	return fantasy.TeamSummary{
		Team:  name,
		Stats: fantasy.Stats{TotalPoints: pts, GoalsScored: 5, Saves: 3},
	}
}

func identity(names ...string) reconcile.Mapping {
	m := make(map[string]string, len(names))
	for _, v := range names {
		m[v] = v
	}
	return reconcile.NewMapping(m)
}

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		d   int
		res string
	}{
		{1, "⬆️ +1"},
		{7, "⬆️ +7"},
		{-1, "⬇️ -1"},
		{-12, "⬇️ -12"},
		{0, " "},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, join.FormatDelta(v.d), v.d)
	}
}

// TestJoinScenario covers three clubs ranked by points where the
// official champion has the lowest fantasy total.
func TestJoinScenario(t *testing.T) {
	teams := []fantasy.TeamSummary{
		team("Alpha", 100),
		team("Beta", 95),
		team("Gamma", 90),
	}
	table := []standings.Entry{
		{Pos: 1, Team: "Gamma", Pts: 90},
		{Pos: 2, Team: "Alpha", Pts: 80},
		{Pos: 3, Team: "Beta", Pts: 70},
	}
	res := join.Join(teams, table, identity("Alpha", "Beta", "Gamma"))
	require.Len(t, res.Rows, 3)
	assert.True(t, res.Report.Empty())

	var names, deltas []string
	var pos []int
	for _, v := range res.Rows {
		names = append(names, v.Team)
		deltas = append(deltas, v.Difference)
		pos = append(pos, v.Pos)
	}
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, names)
	assert.Equal(t, []int{1, 2, 3}, pos)
	assert.Equal(t, []string{"⬆️ +1", "⬆️ +1", "⬇️ -2"}, deltas)
}

func TestRankByPoints(t *testing.T) {
	rows := []join.Row{
		{Team: "A", ActualPos: 2, Stats: fantasy.Stats{TotalPoints: 100}},
		{Team: "B", ActualPos: 1, Stats: fantasy.Stats{TotalPoints: 90}},
		{Team: "C", ActualPos: 3, Stats: fantasy.Stats{TotalPoints: 95}},
	}
	join.Rank(rows)
	assert.Equal(t, "A", rows[0].Team)
	assert.Equal(t, "C", rows[1].Team)
	assert.Equal(t, "B", rows[2].Team)
	assert.Equal(t, "⬆️ +1", rows[0].Difference)
	assert.Equal(t, "⬆️ +1", rows[1].Difference)
	assert.Equal(t, "⬇️ -2", rows[2].Difference)
}

// TestRankTieBreaks verifies secondary keys and the reverse alphabetical
// final tie-break.
func TestRankTieBreaks(t *testing.T) {
	rows := []join.Row{
		{Team: "Arsenal", Stats: fantasy.Stats{TotalPoints: 50}},
		{Team: "Chelsea", Stats: fantasy.Stats{TotalPoints: 50}},
		{Team: "Burnley", Stats: fantasy.Stats{TotalPoints: 50}},
		{Team: "Everton", Stats: fantasy.Stats{TotalPoints: 50, Bonus: 1}},
		{Team: "Fulham", Stats: fantasy.Stats{TotalPoints: 50, GoalsScored: 1}},
		{Team: "Wolves", Stats: fantasy.Stats{TotalPoints: 49, GoalsScored: 30}},
	}
	join.Rank(rows)

	var names []string
	for i, v := range rows {
		names = append(names, v.Team)
		assert.Equal(t, i+1, v.Pos)
	}
	assert.Equal(t, []string{
		"Fulham", "Everton", "Chelsea", "Burnley", "Arsenal", "Wolves",
	}, names)
}

// TestRankFullTies checks ranks are a permutation of 1..N when every
// stat is equal.
func TestRankFullTies(t *testing.T) {
	names := []string{"D", "B", "A", "E", "C"}
	rows := make([]join.Row, 0, len(names))
	for _, v := range names {
		rows = append(rows, join.Row{Team: v, Stats: fantasy.Stats{TotalPoints: 10}})
	}
	join.Rank(rows)

	seen := make(map[int]bool)
	var order []string
	for _, v := range rows {
		assert.False(t, seen[v.Pos], "rank %d repeated", v.Pos)
		seen[v.Pos] = true
		order = append(order, v.Team)
	}
	assert.Len(t, seen, 5)
	for i := 1; i <= 5; i++ {
		assert.True(t, seen[i])
	}
	assert.Equal(t, []string{"E", "D", "C", "B", "A"}, order)
}

// TestJoinDropsTeams verifies inner join semantics and the drop report.
func TestJoinDropsTeams(t *testing.T) {
	teams := []fantasy.TeamSummary{
		team("Man City", 120),
		team("Spurs", 110),
		team("Coventry", 100),
		team("Luton", 60),
	}
	table := []standings.Entry{
		{Pos: 1, Team: "Manchester City", Pts: 91},
		{Pos: 2, Team: "Tottenham Hotspur", Pts: 66},
		{Pos: 3, Team: "Ipswich Town", Pts: 60},
	}
	m := reconcile.NewMapping(map[string]string{
		"Man City": "Manchester City",
		"Spurs":    "Tottenham Hotspur",
		"Luton":    "Luton Town",
	})
	res := join.Join(teams, table, m)

	require.Len(t, res.Rows, 2)
	assert.Equal(t, "Man City", res.Rows[0].Team)
	assert.Equal(t, 1, res.Rows[0].ActualPos)
	assert.Equal(t, " ", res.Rows[0].Difference)
	assert.Equal(t, "Spurs", res.Rows[1].Team)

	assert.Equal(t, []string{"Coventry"}, res.Report.Unmapped)
	assert.Equal(t, []string{"Luton"}, res.Report.Unmatched)
	assert.Equal(t, []string{"Ipswich Town"}, res.Report.StandingsOnly)
	assert.Equal(t, 2, res.Report.Dropped())
	assert.False(t, res.Report.Empty())
}

// TestJoinCardinality checks a bijective mapping keeps exactly the
// intersection of both team sets.
func TestJoinCardinality(t *testing.T) {
	teams := []fantasy.TeamSummary{team("A", 5), team("B", 4), team("C", 3)}
	table := []standings.Entry{
		{Pos: 1, Team: "B"}, {Pos: 2, Team: "C"}, {Pos: 3, Team: "D"},
	}
	res := join.Join(teams, table, identity("A", "B", "C", "D"))
	assert.Len(t, res.Rows, 2)
	assert.Equal(t, []string{"A"}, res.Report.Unmatched)
	assert.Equal(t, []string{"D"}, res.Report.StandingsOnly)
}

func TestJoinEmpty(t *testing.T) {
	res := join.Join(nil, nil, reconcile.Mapping{})
	assert.Empty(t, res.Rows)
	assert.True(t, res.Report.Empty())

	res = join.Join([]fantasy.TeamSummary{team("A", 1)}, nil, identity("A"))
	assert.Empty(t, res.Rows)
	assert.Equal(t, []string{"A"}, res.Report.Unmatched)
}

func TestRowRecord(t *testing.T) {
	r := join.Row{
		Pos:        2,
		Team:       "Arsenal",
		ActualPos:  1,
		Difference: "⬇️ -1",
		Stats: fantasy.Stats{
			TotalPoints: 100, GoalsScored: 10, Assists: 8, CleanSheets: 4,
			YellowCards: 3, RedCards: 1, GoalsConceded: 7, OwnGoals: 1,
			PenaltiesMissed: 2, PenaltiesSaved: 1, Saves: 20, Bonus: 9,
		},
		Points:        fantasy.PositionPoints{GK: 10, DEF: 20, MID: 40, FWD: 30},
		ValueLatestGW: 1000,
	}
	rec := r.Record()
	require.Len(t, rec, len(join.Columns))
	assert.Equal(t, []string{
		"2", "Arsenal", "100", "1", "⬇️ -1", "10", "20", "40", "30",
		"10", "8", "4", "3", "1", "7", "1", "2", "1", "20", "9",
	}, rec)
	assert.NotContains(t, join.Columns, "Team Value (Latest GW)")

	res, err := join.ParseRows(join.Columns, [][]string{rec})
	require.NoError(t, err)
	require.Len(t, res, 1)
	r.ValueLatestGW = 0
	assert.Equal(t, r, res[0])

	r.Difference = " "
	res, err = join.ParseRows(join.Columns, [][]string{r.Record()})
	require.NoError(t, err)
	assert.Equal(t, " ", res[0].Difference)
}
