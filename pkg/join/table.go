package join

import (
	"strconv"

	"github.com/edwardanalytics/fpltable/pkg/tabular"
)

// Columns is the header of the joined table, in display order.
var Columns = []string{
	"Pos",
	"Team",
	"Points",
	"Actual Pos",
	"Difference",
	"GK Points",
	"DEF Points",
	"MID Points",
	"FWD Points",
	"Goals Scored",
	"Assists",
	"Clean Sheets",
	"Yellow Cards",
	"Red Cards",
	"Goals Conceded",
	"Own Goals",
	"Penalties Missed",
	"Penalties Saved",
	"Saves",
	"Bonus Points",
}

func (r *Row) ints() []*int {
	return []*int{
		&r.Points.GK, &r.Points.DEF, &r.Points.MID, &r.Points.FWD,
		&r.GoalsScored, &r.Assists, &r.CleanSheets, &r.YellowCards,
		&r.RedCards, &r.GoalsConceded, &r.OwnGoals, &r.PenaltiesMissed,
		&r.PenaltiesSaved, &r.Saves, &r.Bonus,
	}
}

// Record renders the row in Columns order.
func (r Row) Record() []string {
	res := make([]string, 0, len(Columns))
	res = append(res,
		strconv.Itoa(r.Pos),
		r.Team,
		strconv.Itoa(r.TotalPoints),
		strconv.Itoa(r.ActualPos),
		r.Difference,
	)
	for _, v := range r.ints() {
		res = append(res, strconv.Itoa(*v))
	}
	return res
}

// ParseRows reads a joined table artifact.
func ParseRows(header []string, rows [][]string) ([]Row, error) {
	cols := tabular.NewColumns(header)
	if err := cols.Require(Columns...); err != nil {
		return nil, err
	}
	res := make([]Row, 0, len(rows))
	for _, row := range rows {
		var r Row
		var err error
		r.Team = cols.String(row, "Team")
		r.Difference = difference(row, header)
		if r.Pos, err = cols.Int(row, "Pos"); err != nil {
			return nil, err
		}
		if r.TotalPoints, err = cols.Int(row, "Points"); err != nil {
			return nil, err
		}
		if r.ActualPos, err = cols.Int(row, "Actual Pos"); err != nil {
			return nil, err
		}
		for i, p := range r.ints() {
			if *p, err = cols.Int(row, Columns[5+i]); err != nil {
				return nil, err
			}
		}
		res = append(res, r)
	}
	return res, nil
}

// difference keeps the untrimmed cell, since a single space is a
// meaningful value.
func difference(row, header []string) string {
	for i, v := range header {
		if v == "Difference" && i < len(row) {
			return row[i]
		}
	}
	return ""
}
