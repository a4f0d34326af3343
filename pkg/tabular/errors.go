package tabular

import (
	"fmt"

	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/gnames/gn"
)

func MissingColumnError(name string) error {
	msg := "Column <em>%s</em> is missing from the table"
	vars := []any{name}
	return &gn.Error{
		Code: errcode.MissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing column %q", name),
	}
}

func InvalidFieldError(name, val string, err error) error {
	msg := "Cannot parse <em>%s</em> value '%s'"
	vars := []any{name, val}
	return &gn.Error{
		Code: errcode.InvalidFieldError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("column %q value %q: %w", name, val, err),
	}
}
