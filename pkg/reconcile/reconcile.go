// Package reconcile maps team names of the fantasy game to the names
// used by the official standings.
package reconcile

import (
	"maps"
	"slices"
	"strings"

	"github.com/edwardanalytics/fpltable/pkg/fantasy"
)

// Mapping is an immutable lookup from fantasy team name to standings
// team name. Several fantasy names may point to the same club.
type Mapping struct {
	names map[string]string
}

// NewMapping copies the given dictionary. Keys and values are trimmed,
// entries with an empty side are dropped.
func NewMapping(m map[string]string) Mapping {
	res := Mapping{names: make(map[string]string, len(m))}
	for k, v := range m {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		res.names[k] = v
	}
	return res
}

// Lookup returns the standings name for a fantasy name.
func (m Mapping) Lookup(name string) (string, bool) {
	res, ok := m.names[name]
	return res, ok
}

// Len returns the number of entries.
func (m Mapping) Len() int {
	return len(m.names)
}

// Names returns the fantasy names known to the mapping, sorted.
func (m Mapping) Names() []string {
	return slices.Sorted(maps.Keys(m.names))
}

// MappedTeam is a team summary with its standings name. MappedTeam is
// empty and Mapped is false when the mapping has no entry for the team.
type MappedTeam struct {
	fantasy.TeamSummary
	MappedTeam string
	Mapped     bool
}

// MapTeamNames annotates every team with its standings name. Missing
// entries are not an error: such teams are returned unmapped and their
// names are listed, sorted, in the second return value.
func MapTeamNames(
	teams []fantasy.TeamSummary,
	m Mapping,
) ([]MappedTeam, []string) {
	res := make([]MappedTeam, 0, len(teams))
	var unmapped []string
	for _, v := range teams {
		name, ok := m.Lookup(v.Team)
		if !ok {
			unmapped = append(unmapped, v.Team)
		}
		res = append(res, MappedTeam{
			TeamSummary: v,
			MappedTeam:  name,
			Mapped:      ok,
		})
	}
	slices.Sort(unmapped)
	return res, slices.Compact(unmapped)
}
