package iostore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edwardanalytics/fpltable/internal/iostore"
	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/edwardanalytics/fpltable/pkg/fantasy"
	"github.com/edwardanalytics/fpltable/pkg/join"
	"github.com/edwardanalytics/fpltable/pkg/season"
	"github.com/edwardanalytics/fpltable/pkg/standings"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSeason(t *testing.T, start int) season.Season {
	t.Helper()
	s, err := season.New(start)
	require.NoError(t, err)
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	root := t.TempDir()
	st := iostore.New(root)
	s := mustSeason(t, 2023)

	teams := []fantasy.TeamSummary{
		{
			Team:          "Arsenal",
			Stats:         fantasy.Stats{TotalPoints: 100, GoalsScored: 4, Bonus: 7},
			Points:        fantasy.PositionPoints{GK: 10, DEF: 20, MID: 40, FWD: 30},
			ValueLatestGW: 1000.5,
			HasValue:      true,
		},
		{Team: "Spurs", Stats: fantasy.Stats{TotalPoints: 80}},
	}
	require.NoError(t, st.WriteTeams(s, teams))
	gotTeams, err := st.ReadTeams(s)
	require.NoError(t, err)
	assert.Equal(t, teams, gotTeams)

	players := []fantasy.PlayerSummary{
		{Name: "Bukayo Saka", Team: "Arsenal", Position: fantasy.MID,
			Stats: fantasy.Stats{TotalPoints: 15}},
		{Name: "Bukayo Saka", Team: fantasy.AllTeams, Position: fantasy.MID,
			Stats: fantasy.Stats{TotalPoints: 15}},
	}
	require.NoError(t, st.WritePlayers(s, players))
	gotPlayers, err := st.ReadPlayers(s)
	require.NoError(t, err)
	assert.Equal(t, players, gotPlayers)

	table := []standings.Entry{
		{Pos: 1, Team: "Manchester City", Pts: 91},
		{Pos: 2, Team: "Arsenal", Pts: 89},
	}
	require.NoError(t, st.WriteStandings(s, table))
	gotTable, err := st.ReadStandings(s)
	require.NoError(t, err)
	assert.Equal(t, table, gotTable)

	rows := []join.Row{
		{Pos: 1, Team: "Arsenal", ActualPos: 2, Difference: join.FormatDelta(1),
			Stats: fantasy.Stats{TotalPoints: 100}},
		{Pos: 2, Team: "Spurs", ActualPos: 2, Difference: join.FormatDelta(0),
			Stats: fantasy.Stats{TotalPoints: 80}},
	}
	require.NoError(t, st.WriteJoined(s, rows))
	gotRows, err := st.ReadJoined(s)
	require.NoError(t, err)
	assert.Equal(t, rows, gotRows)
	assert.Equal(t, " ", gotRows[1].Difference)

	_, err = os.Stat(filepath.Join(root, iostore.JoinedDir, "2023-24.csv"))
	assert.NoError(t, err)
}

func TestStore_HeaderOnlyJoined(t *testing.T) {
	st := iostore.New(t.TempDir())
	s := mustSeason(t, 2016)

	require.NoError(t, st.WriteJoined(s, nil))
	rows, err := st.ReadJoined(s)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStore_Missing(t *testing.T) {
	st := iostore.New(t.TempDir())
	s := mustSeason(t, 2020)

	_, err := st.ReadStandings(s)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ArtifactMissingError, gnErr.Code)
	assert.True(t, iostore.IsMissing(err))
	assert.False(t, iostore.IsMissing(os.ErrClosed))
}

func TestStore_BadArtifact(t *testing.T) {
	root := t.TempDir()
	st := iostore.New(root)
	s := mustSeason(t, 2021)

	path := iostore.Path(root, iostore.StandingsDir, s)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("Pos,Team\n1,Arsenal\n"), 0644))

	_, err := st.ReadStandings(s)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ArtifactReadError, gnErr.Code)
}

func TestStore_ListSeasons(t *testing.T) {
	root := t.TempDir()
	st := iostore.New(root)

	labels, err := st.ListFantasySeasons()
	require.NoError(t, err)
	assert.Empty(t, labels)

	for _, v := range []int{2023, 2016, 2019} {
		require.NoError(t, st.WriteTeams(mustSeason(t, v), nil))
	}
	dir := filepath.Join(root, iostore.TeamsDir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2019-21.csv"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "2018-19.csv"), 0755))

	labels, err = st.ListFantasySeasons()
	require.NoError(t, err)
	assert.Equal(t, []string{"2016-17", "2019-20", "2023-24"}, labels)

	labels, err = st.ListJoinedSeasons()
	require.NoError(t, err)
	assert.Empty(t, labels)
}
