package standings

import (
	"errors"
	"fmt"

	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/gnames/gn"
)

// ErrNoStandingsTable is wrapped by NoStandingsTableFoundError.
var ErrNoStandingsTable = errors.New(
	"no table with the columns Pos, Team and Pts was found",
)

// NoStandingsTableFoundError means the page has no table of the expected
// shape. It is fatal for the season.
func NoStandingsTableFoundError() error {
	msg := "No table with <em>Pos</em>, <em>Team</em> and <em>Pts</em> columns found"
	return &gn.Error{
		Code: errcode.NoStandingsTableFoundError,
		Msg:  msg,
		Err:  ErrNoStandingsTable,
	}
}

// ParseHTMLError is returned when the standings page is not valid HTML.
func ParseHTMLError(err error) error {
	msg := "Cannot parse standings page"
	return &gn.Error{
		Code: errcode.FetchDecodeError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot parse standings html: %w", err),
	}
}
