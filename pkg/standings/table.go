package standings

import (
	"strconv"

	"github.com/edwardanalytics/fpltable/pkg/tabular"
)

// Row renders the entry in Columns order.
func (e Entry) Row() []string {
	return []string{strconv.Itoa(e.Pos), e.Team, strconv.Itoa(e.Pts)}
}

// ParseEntries reads a standings artifact.
func ParseEntries(header []string, rows [][]string) ([]Entry, error) {
	cols := tabular.NewColumns(header)
	if err := cols.Require(Columns...); err != nil {
		return nil, err
	}
	res := make([]Entry, 0, len(rows))
	for _, row := range rows {
		var e Entry
		var err error
		if e.Pos, err = cols.Int(row, "Pos"); err != nil {
			return nil, err
		}
		if e.Pts, err = cols.Int(row, "Pts"); err != nil {
			return nil, err
		}
		e.Team = cols.String(row, "Team")
		res = append(res, e)
	}
	return res, nil
}
