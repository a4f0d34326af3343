// Package season converts season start years into canonical
// "YYYY-YY" labels and keeps the list of seasons known to a run.
//
// A season is identified only by its start year. The label is always
// derived from it, so the two can never drift apart.
package season

import (
	"fmt"
	"strconv"
	"time"
)

const (
	minStart = 1000
	maxStart = 9999
)

// Season is an English football season identified by the calendar year
// it starts in.
type Season struct {
	start int
}

// New creates a Season for a four-digit start year.
func New(start int) (Season, error) {
	if start < minStart || start > maxStart {
		return Season{}, InvalidSeasonError(strconv.Itoa(start))
	}
	return Season{start: start}, nil
}

// Start returns the calendar year the season starts in.
func (s Season) Start() int {
	return s.start
}

// Label returns the canonical season label, for example "2023-24".
func (s Season) Label() string {
	return fmt.Sprintf("%d-%02d", s.start, (s.start+1)%100)
}

// String implements fmt.Stringer.
func (s Season) String() string {
	return s.Label()
}

// Label converts a four-digit start year into a "YYYY-YY" label.
// The two-digit end wraps at century boundaries: 1999 gives "1999-00".
func Label(start int) (string, error) {
	s, err := New(start)
	if err != nil {
		return "", err
	}
	return s.Label(), nil
}

// Parse reads a full "YYYY-YY" label. The suffix must be the two last
// digits of the following year.
func Parse(label string) (Season, error) {
	if len(label) != 7 || label[4] != '-' {
		return Season{}, InvalidSeasonError(label)
	}
	start, err := strconv.Atoi(label[:4])
	if err != nil {
		return Season{}, InvalidSeasonError(label)
	}
	res, err := New(start)
	if err != nil {
		return Season{}, InvalidSeasonError(label)
	}
	if res.Label() != label {
		return Season{}, InvalidSeasonError(label)
	}
	return res, nil
}

// CurrentStart returns the start year of the season in progress at now.
// Seasons run from August to May.
func CurrentStart(now time.Time) int {
	if now.Month() >= time.August {
		return now.Year()
	}
	return now.Year() - 1
}

// Current returns the season in progress at now.
func Current(now time.Time) (Season, error) {
	return New(CurrentStart(now))
}

// Range returns all seasons from first to last start years inclusive.
func Range(first, last int) ([]Season, error) {
	if _, err := New(first); err != nil {
		return nil, err
	}
	if _, err := New(last); err != nil {
		return nil, err
	}
	if first > last {
		return nil, InvalidSeasonRangeError(first, last)
	}
	res := make([]Season, 0, last-first+1)
	for i := first; i <= last; i++ {
		res = append(res, Season{start: i})
	}
	return res, nil
}
