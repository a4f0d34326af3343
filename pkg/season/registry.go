package season

import (
	"slices"
)

// Registry holds the seasons a pipeline run works with. It is built
// once at the start of the run and passed to whoever needs it.
type Registry struct {
	seasons []Season
}

// NewRegistry builds a Registry from season labels, usually the names of
// existing artifacts. Duplicates are collapsed. Labels that do not parse
// are returned as skipped so the caller can report them.
func NewRegistry(labels []string) (*Registry, []string) {
	var skipped []string
	seen := make(map[int]struct{})
	res := &Registry{}
	for _, l := range labels {
		s, err := Parse(l)
		if err != nil {
			skipped = append(skipped, l)
			continue
		}
		if _, ok := seen[s.start]; ok {
			continue
		}
		seen[s.start] = struct{}{}
		res.seasons = append(res.seasons, s)
	}
	slices.SortFunc(res.seasons, func(a, b Season) int {
		return a.start - b.start
	})
	return res, skipped
}

// Seasons returns a copy of known seasons in ascending order.
func (r *Registry) Seasons() []Season {
	return slices.Clone(r.seasons)
}

// Len returns the number of known seasons.
func (r *Registry) Len() int {
	return len(r.seasons)
}

// Latest returns the most recent known season.
func (r *Registry) Latest() (Season, error) {
	if len(r.seasons) == 0 {
		return Season{}, EmptyRegistryError()
	}
	return r.seasons[len(r.seasons)-1], nil
}

// Contains reports if the season is known to the registry.
func (r *Registry) Contains(s Season) bool {
	return slices.Contains(r.seasons, s)
}
