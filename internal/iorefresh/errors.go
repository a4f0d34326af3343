package iorefresh

import (
	"fmt"

	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/gnames/gn"
)

// SeasonFailedError wraps the failure of one season in a batch.
func SeasonFailedError(label string, err error) error {
	msg := "Season <em>%s</em> failed"
	vars := []any{label}
	return &gn.Error{
		Code: errcode.SeasonFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("season %s: %w", label, err),
	}
}

// AllSeasonsFailedError is returned when no season of a batch succeeded.
func AllSeasonsFailedError(op string, count int) error {
	msg := `All <em>%d</em> seasons failed during %s

<em>How to fix:</em>
  1. Check the log file for the error of each season
  2. Check network access to the data sources`

	vars := []any{count, op}

	return &gn.Error{
		Code: errcode.AllSeasonsFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("all %d seasons failed during %s", count, op),
	}
}

// CancelledError is returned when a batch is interrupted.
func CancelledError(err error) error {
	msg := "Operation cancelled"

	return &gn.Error{
		Code: errcode.CancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("operation cancelled: %w", err),
	}
}
