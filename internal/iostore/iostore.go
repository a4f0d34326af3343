// Package iostore keeps season artifacts as CSV files, one file per
// season in a directory per table kind. It implements pipeline.Store.
package iostore

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/edwardanalytics/fpltable/internal/iofs"
	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/edwardanalytics/fpltable/pkg/fantasy"
	"github.com/edwardanalytics/fpltable/pkg/join"
	"github.com/edwardanalytics/fpltable/pkg/pipeline"
	"github.com/edwardanalytics/fpltable/pkg/season"
	"github.com/edwardanalytics/fpltable/pkg/standings"
	"github.com/gnames/gn"
)

// Artifact directories inside the data directory.
const (
	TeamsDir     = "fpl_premier_league_tables"
	PlayersDir   = "fpl_premier_league_player_data"
	StandingsDir = "actual_premier_league_tables"
	JoinedDir    = "fpl_premier_league_tables_joined"
)

type store struct {
	root string
}

// New creates a store rooted at the data directory.
func New(root string) pipeline.Store {
	return &store{root: root}
}

// Path returns the artifact file of a season in one of the artifact
// directories.
func Path(root, dir string, s season.Season) string {
	return filepath.Join(root, dir, s.Label()+".csv")
}

func (st *store) WriteTeams(s season.Season, teams []fantasy.TeamSummary) error {
	rows := make([][]string, 0, len(teams))
	for _, v := range teams {
		rows = append(rows, v.Row())
	}
	return st.write(TeamsDir, s, fantasy.TeamColumns, rows)
}

func (st *store) ReadTeams(s season.Season) ([]fantasy.TeamSummary, error) {
	path, header, rows, err := st.read(TeamsDir, s)
	if err != nil {
		return nil, err
	}
	res, err := fantasy.ParseTeamSummaries(header, rows)
	if err != nil {
		return nil, ArtifactReadError(path, err)
	}
	return res, nil
}

func (st *store) WritePlayers(
	s season.Season,
	players []fantasy.PlayerSummary,
) error {
	rows := make([][]string, 0, len(players))
	for _, v := range players {
		rows = append(rows, v.Row())
	}
	return st.write(PlayersDir, s, fantasy.PlayerColumns, rows)
}

func (st *store) ReadPlayers(s season.Season) ([]fantasy.PlayerSummary, error) {
	path, header, rows, err := st.read(PlayersDir, s)
	if err != nil {
		return nil, err
	}
	res, err := fantasy.ParsePlayerSummaries(header, rows)
	if err != nil {
		return nil, ArtifactReadError(path, err)
	}
	return res, nil
}

func (st *store) WriteStandings(s season.Season, table []standings.Entry) error {
	rows := make([][]string, 0, len(table))
	for _, v := range table {
		rows = append(rows, v.Row())
	}
	return st.write(StandingsDir, s, standings.Columns, rows)
}

func (st *store) ReadStandings(s season.Season) ([]standings.Entry, error) {
	path, header, rows, err := st.read(StandingsDir, s)
	if err != nil {
		return nil, err
	}
	res, err := standings.ParseEntries(header, rows)
	if err != nil {
		return nil, ArtifactReadError(path, err)
	}
	return res, nil
}

func (st *store) WriteJoined(s season.Season, joined []join.Row) error {
	rows := make([][]string, 0, len(joined))
	for _, v := range joined {
		rows = append(rows, v.Record())
	}
	return st.write(JoinedDir, s, join.Columns, rows)
}

func (st *store) ReadJoined(s season.Season) ([]join.Row, error) {
	path, header, rows, err := st.read(JoinedDir, s)
	if err != nil {
		return nil, err
	}
	res, err := join.ParseRows(header, rows)
	if err != nil {
		return nil, ArtifactReadError(path, err)
	}
	return res, nil
}

func (st *store) ListFantasySeasons() ([]string, error) {
	return st.list(TeamsDir)
}

func (st *store) ListJoinedSeasons() ([]string, error) {
	return st.list(JoinedDir)
}

func (st *store) write(
	dir string,
	s season.Season,
	header []string,
	rows [][]string,
) error {
	path := Path(st.root, dir, s)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return ArtifactWriteError(path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return ArtifactWriteError(path, err)
	}

	if err := iofs.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return ArtifactWriteError(path, err)
	}
	return nil
}

func (st *store) read(
	dir string,
	s season.Season,
) (string, []string, [][]string, error) {
	path := Path(st.root, dir, s)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, nil, nil, ArtifactMissingError(path)
	}
	if err != nil {
		return path, nil, nil, ArtifactReadError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return path, nil, nil, ArtifactReadError(path, err)
	}
	if len(records) == 0 {
		return path, nil, nil, ArtifactReadError(path, errors.New("empty file"))
	}
	return path, records[0], records[1:], nil
}

// list returns sorted season labels of a directory. Files that are not
// named after a valid season are ignored.
func (st *store) list(dir string) ([]string, error) {
	path := filepath.Join(st.root, dir)
	entries, err := os.ReadDir(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, ArtifactReadError(path, err)
	}

	var res []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".csv") {
			continue
		}
		label := strings.TrimSuffix(name, ".csv")
		if _, err := season.Parse(label); err != nil {
			continue
		}
		res = append(res, label)
	}
	slices.Sort(res)
	return res, nil
}

// IsMissing reports if err is an ArtifactMissingError.
func IsMissing(err error) bool {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return false
	}
	return gnErr.Code == errcode.ArtifactMissingError
}
