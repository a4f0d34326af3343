// Package join merges fantasy team summaries with the official table of
// the same season. It ranks clubs by fantasy performance and shows how
// that rank differs from the actual finishing position.
package join

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/edwardanalytics/fpltable/pkg/fantasy"
	"github.com/edwardanalytics/fpltable/pkg/reconcile"
	"github.com/edwardanalytics/fpltable/pkg/standings"
)

// Row is one club of the joined season table.
type Row struct {
	// Pos is the rank by fantasy performance, 1..N without ties.
	Pos int
	// Team is the fantasy name of the club.
	Team string
	// ActualPos is the official finishing position.
	ActualPos int
	// Difference is the formatted ActualPos - Pos.
	Difference string
	fantasy.Stats
	Points fantasy.PositionPoints
	// ValueLatestGW is carried along but never written to the table.
	ValueLatestGW float64
}

// Report lists the teams that did not make it into the joined table.
type Report struct {
	// Unmapped are fantasy teams without a mapping entry.
	Unmapped []string
	// Unmatched are mapped fantasy teams whose standings name is absent
	// from the official table.
	Unmatched []string
	// StandingsOnly are official clubs with no fantasy counterpart.
	StandingsOnly []string
}

// Dropped returns the number of fantasy teams left out.
func (r Report) Dropped() int {
	return len(r.Unmapped) + len(r.Unmatched)
}

// Empty is true when nothing was dropped on either side.
func (r Report) Empty() bool {
	return r.Dropped() == 0 && len(r.StandingsOnly) == 0
}

// Result is the joined table of a season with its drop report.
type Result struct {
	Rows   []Row
	Report Report
}

// Join inner-joins team summaries with standings through the mapping,
// ranks the result and computes rank differences.
func Join(
	teams []fantasy.TeamSummary,
	table []standings.Entry,
	m reconcile.Mapping,
) Result {
	var res Result
	mapped, unmapped := reconcile.MapTeamNames(teams, m)
	res.Report.Unmapped = unmapped

	byName := make(map[string][]standings.Entry, len(table))
	for _, v := range table {
		byName[v.Team] = append(byName[v.Team], v)
	}

	used := make(map[string]struct{})
	var unmatched []string
	for _, mt := range mapped {
		if !mt.Mapped {
			continue
		}
		entries, ok := byName[mt.MappedTeam]
		if !ok {
			unmatched = append(unmatched, mt.Team)
			continue
		}
		used[mt.MappedTeam] = struct{}{}
		for _, e := range entries {
			res.Rows = append(res.Rows, Row{
				Team:          mt.Team,
				ActualPos:     e.Pos,
				Stats:         mt.Stats,
				Points:        mt.Points,
				ValueLatestGW: mt.ValueLatestGW,
			})
		}
	}
	slices.Sort(unmatched)
	res.Report.Unmatched = slices.Compact(unmatched)

	var only []string
	for _, v := range table {
		if _, ok := used[v.Team]; !ok {
			only = append(only, v.Team)
		}
	}
	slices.Sort(only)
	res.Report.StandingsOnly = slices.Compact(only)

	Rank(res.Rows)
	return res
}

// Rank sorts rows by fantasy performance and assigns Pos and Difference.
// The order is descending by total points, then goals, assists, clean
// sheets, yellow cards, red cards, goals conceded, own goals, penalties
// missed, penalties saved, saves, bonus and finally team name, also
// descending. Ranks are strictly sequential even for full ties.
func Rank(rows []Row) {
	slices.SortStableFunc(rows, compareRows)
	for i := range rows {
		rows[i].Pos = i + 1
		rows[i].Difference = FormatDelta(rows[i].ActualPos - rows[i].Pos)
	}
}

func compareRows(a, b Row) int {
	ka, kb := rankKeys(a), rankKeys(b)
	for i := range ka {
		if c := cmp.Compare(kb[i], ka[i]); c != 0 {
			return c
		}
	}
	return strings.Compare(b.Team, a.Team)
}

func rankKeys(r Row) [12]int {
	return [12]int{
		r.TotalPoints,
		r.GoalsScored,
		r.Assists,
		r.CleanSheets,
		r.YellowCards,
		r.RedCards,
		r.GoalsConceded,
		r.OwnGoals,
		r.PenaltiesMissed,
		r.PenaltiesSaved,
		r.Saves,
		r.Bonus,
	}
}

// FormatDelta renders the difference between actual and fantasy rank.
// A positive value means the club does better in the fantasy game.
func FormatDelta(d int) string {
	switch {
	case d > 0:
		return fmt.Sprintf("⬆️ +%d", d)
	case d < 0:
		return fmt.Sprintf("⬇️ %d", d)
	default:
		return " "
	}
}
