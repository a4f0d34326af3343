// Package fantasy aggregates per-gameweek Fantasy Premier League records
// into team and player summaries for one season.
//
// Everything here is pure: no network, no files. Records come from
// CSV tables parsed by the I/O layer.
package fantasy

// Position is the playing position of a player as known to the
// fantasy game.
type Position string

const (
	GK      Position = "GK"
	DEF     Position = "DEF"
	MID     Position = "MID"
	FWD     Position = "FWD"
	Unknown Position = "Unknown"
)

// AllTeams is the sentinel team name of the duplicated player rows used
// for unfiltered views.
const AllTeams = "All Teams"

// PositionFromCode converts the element_type code of player metadata.
func PositionFromCode(code int) Position {
	switch code {
	case 1:
		return GK
	case 2:
		return DEF
	case 3:
		return MID
	case 4:
		return FWD
	default:
		return Unknown
	}
}

// Stats are the summable performance numbers of a player.
type Stats struct {
	TotalPoints     int
	GoalsScored     int
	Assists         int
	CleanSheets     int
	YellowCards     int
	RedCards        int
	GoalsConceded   int
	OwnGoals        int
	PenaltiesMissed int
	PenaltiesSaved  int
	Saves           int
	Bonus           int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.TotalPoints += o.TotalPoints
	s.GoalsScored += o.GoalsScored
	s.Assists += o.Assists
	s.CleanSheets += o.CleanSheets
	s.YellowCards += o.YellowCards
	s.RedCards += o.RedCards
	s.GoalsConceded += o.GoalsConceded
	s.OwnGoals += o.OwnGoals
	s.PenaltiesMissed += o.PenaltiesMissed
	s.PenaltiesSaved += o.PenaltiesSaved
	s.Saves += o.Saves
	s.Bonus += o.Bonus
}

// Record is one player in one gameweek.
type Record struct {
	Name     string
	Element  int
	TeamID   int
	Team     string
	Position Position
	GW       int
	// Value is the squad value of the player at this gameweek, in
	// tenths of a million.
	Value float64
	Stats
}

// PositionPoints splits total points by position.
type PositionPoints struct {
	GK  int
	DEF int
	MID int
	FWD int
}

// Sum returns the points of all four slots.
func (p PositionPoints) Sum() int {
	return p.GK + p.DEF + p.MID + p.FWD
}

// SplitPoints assigns all points of a record to the slot of its
// position. Records with any other position contribute to no slot.
func SplitPoints(r Record) PositionPoints {
	var res PositionPoints
	switch r.Position {
	case GK:
		res.GK = r.TotalPoints
	case DEF:
		res.DEF = r.TotalPoints
	case MID:
		res.MID = r.TotalPoints
	case FWD:
		res.FWD = r.TotalPoints
	}
	return res
}

func (p *PositionPoints) add(o PositionPoints) {
	p.GK += o.GK
	p.DEF += o.DEF
	p.MID += o.MID
	p.FWD += o.FWD
}

// TeamSummary aggregates a season for one club.
type TeamSummary struct {
	Team string
	Stats
	Points PositionPoints
	// ValueLatestGW is the summed squad value at the season's latest
	// gameweek. HasValue is false when the team had no rows there.
	ValueLatestGW float64
	HasValue      bool
}

// PlayerSummary aggregates a season for one player. Team and Position
// are taken from the latest gameweek and are empty when the player did
// not appear in it.
type PlayerSummary struct {
	Name     string
	Team     string
	Position Position
	Stats
}

// Summary is the output of the aggregation of one season.
type Summary struct {
	Teams   []TeamSummary
	Players []PlayerSummary
}
