package iofantasy

import (
	"fmt"

	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/gnames/gn"
)

// NoGameweekDataError is returned when a season has no scored gameweek
// yet, usually before the first match of the season.
func NoGameweekDataError(label string) error {
	msg := "No gameweek data for season <em>%s</em> yet"
	vars := []any{label}
	return &gn.Error{
		Code: errcode.NoGameweekDataError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no gameweek data for %s", label),
	}
}
