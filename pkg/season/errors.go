package season

import (
	"fmt"

	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/gnames/gn"
)

// InvalidSeasonError is returned for input that is not a four-digit
// start year or a well-formed "YYYY-YY" label.
func InvalidSeasonError(input string) error {
	msg := "Invalid season <em>%s</em>, expected a four-digit start year"
	vars := []any{input}
	return &gn.Error{
		Code: errcode.InvalidSeasonError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid season %q", input),
	}
}

// InvalidSeasonRangeError is returned when the first season starts after
// the last one.
func InvalidSeasonRangeError(first, last int) error {
	msg := "First season <em>%d</em> is after last season <em>%d</em>"
	vars := []any{first, last}
	return &gn.Error{
		Code: errcode.InvalidSeasonRangeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid season range %d..%d", first, last),
	}
}

// EmptyRegistryError is returned when no season artifacts exist yet.
func EmptyRegistryError() error {
	msg := "No seasons are available yet"
	return &gn.Error{
		Code: errcode.EmptyRegistryError,
		Msg:  msg,
		Err:  fmt.Errorf("season registry is empty"),
	}
}
