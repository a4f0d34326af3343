package fantasy

import (
	"maps"
	"slices"
	"strings"
)

// PlayerMeta is a row of per-season player metadata.
type PlayerMeta struct {
	ID          int
	TeamID      int
	ElementType int
}

// TeamName is a row of the master team list.
type TeamName struct {
	Season string
	TeamID int
	Name   string
}

// NeedsPositions reports if any record lacks a position, which means
// the source table had no position column.
func NeedsPositions(recs []Record) bool {
	for i := range recs {
		if recs[i].Position == "" {
			return true
		}
	}
	return false
}

// ResolvePositions fills team and position of records that have no
// position, using player metadata and the master team list filtered to
// the season. Records whose element is unknown get an empty team and
// Unknown position. The input slice is not modified.
func ResolvePositions(
	recs []Record,
	players []PlayerMeta,
	teams []TeamName,
	season string,
) []Record {
	meta := make(map[int]PlayerMeta, len(players))
	for _, v := range players {
		if _, ok := meta[v.ID]; !ok {
			meta[v.ID] = v
		}
	}
	names := make(map[int]string)
	for _, v := range teams {
		if v.Season != season {
			continue
		}
		if _, ok := names[v.TeamID]; !ok {
			names[v.TeamID] = v.Name
		}
	}

	res := slices.Clone(recs)
	for i := range res {
		if res[i].Position != "" {
			continue
		}
		m, ok := meta[res[i].Element]
		if !ok {
			res[i].TeamID = 0
			res[i].Team = ""
			res[i].Position = Unknown
			continue
		}
		res[i].TeamID = m.TeamID
		res[i].Team = names[m.TeamID]
		res[i].Position = PositionFromCode(m.ElementType)
	}
	return res
}

// MaxGameweek returns the largest gameweek number among records,
// or 0 for no records.
func MaxGameweek(recs []Record) int {
	var res int
	for i := range recs {
		res = max(res, recs[i].GW)
	}
	return res
}

// SummarizeTeams sums every stat per team, splits points by position and
// attaches the squad value at the latest gameweek. Records without a team
// name are left out. Results are sorted by total points, descending;
// teams with equal points keep alphabetical order.
func SummarizeTeams(recs []Record) []TeamSummary {
	maxGW := MaxGameweek(recs)
	byTeam := make(map[string]*TeamSummary)
	for i := range recs {
		r := recs[i]
		if r.Team == "" {
			continue
		}
		ts, ok := byTeam[r.Team]
		if !ok {
			ts = &TeamSummary{Team: r.Team}
			byTeam[r.Team] = ts
		}
		ts.Stats.Add(r.Stats)
		ts.Points.add(SplitPoints(r))
		if r.GW == maxGW {
			ts.ValueLatestGW += r.Value
			ts.HasValue = true
		}
	}

	res := make([]TeamSummary, 0, len(byTeam))
	for _, k := range slices.Sorted(maps.Keys(byTeam)) {
		res = append(res, *byTeam[k])
	}
	slices.SortStableFunc(res, func(a, b TeamSummary) int {
		return b.TotalPoints - a.TotalPoints
	})
	return res
}

// SummarizePlayers sums stats per player name across the whole season.
// A player who changed clubs mid-season keeps all stats under the club
// seen at the latest gameweek. Position and team come from the first
// latest-gameweek row of the player. Results are sorted by total points,
// descending, with alphabetical order among equal points.
func SummarizePlayers(recs []Record) []PlayerSummary {
	maxGW := MaxGameweek(recs)
	byName := make(map[string]*PlayerSummary)
	snapshot := make(map[string]struct{})
	for i := range recs {
		r := recs[i]
		ps, ok := byName[r.Name]
		if !ok {
			ps = &PlayerSummary{Name: r.Name}
			byName[r.Name] = ps
		}
		ps.Stats.Add(r.Stats)
		if r.GW != maxGW {
			continue
		}
		if _, ok := snapshot[r.Name]; ok {
			continue
		}
		snapshot[r.Name] = struct{}{}
		ps.Team = r.Team
		ps.Position = r.Position
	}

	res := make([]PlayerSummary, 0, len(byName))
	for _, k := range slices.Sorted(maps.Keys(byName)) {
		res = append(res, *byName[k])
	}
	slices.SortStableFunc(res, func(a, b PlayerSummary) int {
		return b.TotalPoints - a.TotalPoints
	})
	return res
}

// WithAllTeams appends a copy of every player under the AllTeams
// sentinel team, so consumers can filter to one club or the union.
func WithAllTeams(players []PlayerSummary) []PlayerSummary {
	res := make([]PlayerSummary, 0, 2*len(players))
	res = append(res, players...)
	for _, v := range players {
		v.Team = AllTeams
		res = append(res, v)
	}
	return res
}

// NormalizeName replaces underscores in player names with spaces.
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// Summarize runs the whole aggregation of one season. Records must
// already have positions resolved.
func Summarize(recs []Record) Summary {
	players := WithAllTeams(SummarizePlayers(recs))
	for i := range players {
		players[i].Name = NormalizeName(players[i].Name)
	}
	return Summary{
		Teams:   SummarizeTeams(recs),
		Players: players,
	}
}
