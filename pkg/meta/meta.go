// Package meta describes the persisted state that keeps the pipeline
// from reprocessing a gameweek it has already ingested.
package meta

import "context"

// ScoringMeta is the content of the metadata file.
type ScoringMeta struct {
	// ScoringDataGameweek is the last gameweek that was ingested.
	ScoringDataGameweek int `json:"scoring_data_gameweek"`
}

// Gate decides if a pipeline run has anything new to do.
//
// Check compares the stored gameweek with current. When they are equal it
// returns false and leaves the state alone. Otherwise it stores current
// and returns true. Implementations are not safe for concurrent
// processes; one pipeline instance at a time is assumed.
type Gate interface {
	Check(ctx context.Context, current int) (bool, error)

	// Record stores current without comparing, for forced runs.
	Record(ctx context.Context, current int) error
}

// IsCurrent reports if stored state already covers the current
// gameweek. A nil state means nothing was ever ingested.
func IsCurrent(stored *ScoringMeta, current int) bool {
	return stored != nil && stored.ScoringDataGameweek == current
}
