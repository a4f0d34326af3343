package fantasy_test

import (
	"testing"

	"github.com/edwardanalytics/fpltable/pkg/fantasy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(name, team string, pos fantasy.Position, gw, pts int, value float64) fantasy.Record {
	return fantasy.Record{
		Name:     name,
		Team:     team,
		Position: pos,
		GW:       gw,
		Value:    value,
		Stats:    fantasy.Stats{TotalPoints: pts},
	}
}

func sampleRecords() []fantasy.Record {
	recs := []fantasy.Record{
		rec("Raya", "Arsenal", fantasy.GK, 1, 6, 55),
		rec("Saliba", "Arsenal", fantasy.DEF, 1, 8, 60),
		rec("Saka", "Arsenal", fantasy.MID, 1, 12, 90),
		rec("Havertz", "Arsenal", fantasy.FWD, 1, 2, 80),
		rec("Raya", "Arsenal", fantasy.GK, 2, 1, 56),
		rec("Saka", "Arsenal", fantasy.MID, 2, 3, 91),
		rec("Pickford", "Everton", fantasy.GK, 1, 2, 50),
		rec("Pickford", "Everton", fantasy.GK, 2, 7, 50),
		rec("Calvert-Lewin", "Everton", fantasy.FWD, 1, 9, 70),
	}
	recs[2].GoalsScored = 1
	recs[2].Assists = 1
	recs[2].Bonus = 3
	recs[8].GoalsScored = 2
	recs[8].YellowCards = 1
	return recs
}

func TestPositionFromCode(t *testing.T) {
	tests := []struct {
		code int
		res  fantasy.Position
	}{
		{1, fantasy.GK},
		{2, fantasy.DEF},
		{3, fantasy.MID},
		{4, fantasy.FWD},
		{5, fantasy.Unknown},
		{0, fantasy.Unknown},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, fantasy.PositionFromCode(v.code), v.code)
	}
}

// TestSummarizeTeams verifies sums, ordering and position split.
func TestSummarizeTeams(t *testing.T) {
	res := fantasy.SummarizeTeams(sampleRecords())
	require.Len(t, res, 2)

	ars := res[0]
	assert.Equal(t, "Arsenal", ars.Team)
	assert.Equal(t, 32, ars.TotalPoints)
	assert.Equal(t, 7, ars.Points.GK)
	assert.Equal(t, 8, ars.Points.DEF)
	assert.Equal(t, 15, ars.Points.MID)
	assert.Equal(t, 2, ars.Points.FWD)
	assert.Equal(t, 1, ars.GoalsScored)
	assert.Equal(t, 3, ars.Bonus)

	eve := res[1]
	assert.Equal(t, "Everton", eve.Team)
	assert.Equal(t, 18, eve.TotalPoints)
	assert.Equal(t, 2, eve.GoalsScored)
	assert.Equal(t, 1, eve.YellowCards)
}

// TestSummarizeTeamsConservesPoints checks that no points are lost or
// invented and that the position split is exhaustive.
func TestSummarizeTeamsConservesPoints(t *testing.T) {
	recs := sampleRecords()
	var total int
	for _, v := range recs {
		total += v.TotalPoints
	}

	var sum int
	for _, v := range fantasy.SummarizeTeams(recs) {
		sum += v.TotalPoints
		assert.Equal(t, v.TotalPoints, v.Points.Sum(), v.Team)
	}
	assert.Equal(t, total, sum)
}

// TestSummarizeTeamsLatestValue verifies the squad value only comes from
// the highest gameweek.
func TestSummarizeTeamsLatestValue(t *testing.T) {
	res := fantasy.SummarizeTeams(sampleRecords())

	ars := res[0]
	assert.True(t, ars.HasValue)
	assert.Equal(t, 147.0, ars.ValueLatestGW)

	eve := res[1]
	assert.True(t, eve.HasValue)
	assert.Equal(t, 50.0, eve.ValueLatestGW)
}

func TestSummarizeTeamsNoLatestRows(t *testing.T) {
	recs := []fantasy.Record{
		rec("A", "Alpha", fantasy.MID, 1, 5, 50),
		rec("B", "Beta", fantasy.MID, 2, 1, 60),
	}
	res := fantasy.SummarizeTeams(recs)
	require.Len(t, res, 2)
	assert.Equal(t, "Alpha", res[0].Team)
	assert.False(t, res[0].HasValue)
	assert.Equal(t, 0.0, res[0].ValueLatestGW)
	assert.True(t, res[1].HasValue)
}

func TestSummarizeTeamsTiesAndMissingTeam(t *testing.T) {
	recs := []fantasy.Record{
		rec("C1", "Chelsea", fantasy.MID, 1, 10, 50),
		rec("A1", "Arsenal", fantasy.MID, 1, 10, 50),
		rec("B1", "Brentford", fantasy.MID, 1, 10, 50),
		rec("X", "", fantasy.Unknown, 1, 40, 50),
	}
	res := fantasy.SummarizeTeams(recs)
	require.Len(t, res, 3)
	assert.Equal(t, "Arsenal", res[0].Team)
	assert.Equal(t, "Brentford", res[1].Team)
	assert.Equal(t, "Chelsea", res[2].Team)
}

func TestSummarizeTeamsUnknownPosition(t *testing.T) {
	recs := []fantasy.Record{
		rec("A", "Alpha", fantasy.Unknown, 1, 5, 50),
		rec("B", "Alpha", fantasy.DEF, 1, 3, 50),
	}
	res := fantasy.SummarizeTeams(recs)
	require.Len(t, res, 1)
	assert.Equal(t, 8, res[0].TotalPoints)
	assert.Equal(t, 3, res[0].Points.Sum())
}

// TestSummarizePlayers verifies player sums and the latest gameweek
// snapshot of team and position.
func TestSummarizePlayers(t *testing.T) {
	res := fantasy.SummarizePlayers(sampleRecords())
	require.Len(t, res, 6)

	assert.Equal(t, "Saka", res[0].Name)
	assert.Equal(t, 15, res[0].TotalPoints)
	assert.Equal(t, "Arsenal", res[0].Team)
	assert.Equal(t, fantasy.MID, res[0].Position)

	byName := make(map[string]fantasy.PlayerSummary)
	for _, v := range res {
		byName[v.Name] = v
	}
	assert.Equal(t, 9, byName["Pickford"].TotalPoints)
	assert.Equal(t, "Everton", byName["Pickford"].Team)

	// did not play the last gameweek
	cl := byName["Calvert-Lewin"]
	assert.Equal(t, 9, cl.TotalPoints)
	assert.Equal(t, "", cl.Team)
	assert.Equal(t, fantasy.Position(""), cl.Position)
}

// TestSummarizePlayersTransfer documents that a player moving clubs
// keeps all season stats under the latest club.
func TestSummarizePlayersTransfer(t *testing.T) {
	recs := []fantasy.Record{
		rec("Mover", "Fulham", fantasy.MID, 1, 10, 50),
		rec("Mover", "Chelsea", fantasy.MID, 2, 4, 55),
	}
	res := fantasy.SummarizePlayers(recs)
	require.Len(t, res, 1)
	assert.Equal(t, 14, res[0].TotalPoints)
	assert.Equal(t, "Chelsea", res[0].Team)
}

func TestSummarizePlayersDoubleGameweek(t *testing.T) {
	recs := []fantasy.Record{
		rec("Twice", "Spurs", fantasy.FWD, 3, 5, 70),
		rec("Twice", "Spurs", fantasy.FWD, 3, 2, 70),
	}
	res := fantasy.SummarizePlayers(recs)
	require.Len(t, res, 1)
	assert.Equal(t, 7, res[0].TotalPoints)
	assert.Equal(t, "Spurs", res[0].Team)
}

func TestSummarize(t *testing.T) {
	recs := []fantasy.Record{
		rec("Bukayo_Saka", "Arsenal", fantasy.MID, 1, 12, 90),
		rec("Jordan_Pickford", "Everton", fantasy.GK, 1, 2, 50),
	}
	res := fantasy.Summarize(recs)
	require.Len(t, res.Teams, 2)
	require.Len(t, res.Players, 4)

	assert.Equal(t, "Bukayo Saka", res.Players[0].Name)
	assert.Equal(t, "Arsenal", res.Players[0].Team)
	assert.Equal(t, "Jordan Pickford", res.Players[1].Name)
	assert.Equal(t, "Bukayo Saka", res.Players[2].Name)
	assert.Equal(t, fantasy.AllTeams, res.Players[2].Team)
	assert.Equal(t, fantasy.AllTeams, res.Players[3].Team)
	assert.Equal(t, 2, res.Players[3].TotalPoints)
}

func TestResolvePositions(t *testing.T) {
	recs := []fantasy.Record{
		{Name: "A", Element: 1, GW: 1},
		{Name: "B", Element: 2, GW: 1},
		{Name: "C", Element: 3, GW: 1},
		{Name: "D", Element: 9, GW: 1},
	}
	players := []fantasy.PlayerMeta{
		{ID: 1, TeamID: 10, ElementType: 1},
		{ID: 2, TeamID: 11, ElementType: 4},
		{ID: 3, TeamID: 12, ElementType: 7},
	}
	teams := []fantasy.TeamName{
		{Season: "2019-20", TeamID: 10, Name: "Bournemouth"},
		{Season: "2018-19", TeamID: 10, Name: "Arsenal"},
		{Season: "2018-19", TeamID: 11, Name: "Bournemouth"},
		{Season: "2018-19", TeamID: 12, Name: "Brighton"},
	}

	assert.True(t, fantasy.NeedsPositions(recs))
	res := fantasy.ResolvePositions(recs, players, teams, "2018-19")
	require.Len(t, res, 4)
	assert.False(t, fantasy.NeedsPositions(res))

	assert.Equal(t, "Arsenal", res[0].Team)
	assert.Equal(t, 10, res[0].TeamID)
	assert.Equal(t, fantasy.GK, res[0].Position)
	assert.Equal(t, "Bournemouth", res[1].Team)
	assert.Equal(t, fantasy.FWD, res[1].Position)
	assert.Equal(t, "Brighton", res[2].Team)
	assert.Equal(t, fantasy.Unknown, res[2].Position)
	assert.Equal(t, "", res[3].Team)
	assert.Equal(t, fantasy.Unknown, res[3].Position)

	// input is untouched
	assert.Equal(t, fantasy.Position(""), recs[0].Position)
}

func TestMaxGameweek(t *testing.T) {
	assert.Equal(t, 0, fantasy.MaxGameweek(nil))
	assert.Equal(t, 2, fantasy.MaxGameweek(sampleRecords()))
}
