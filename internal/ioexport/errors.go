package ioexport

import (
	"fmt"

	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/gnames/gn"
)

// ExportDriverError is returned for an unknown warehouse driver.
func ExportDriverError(driver string) error {
	msg := `Unknown export driver <em>%s</em>

<em>How to fix:</em>
  Set export.driver to "sqlite" or "postgres" in config.yaml`

	vars := []any{driver}

	return &gn.Error{
		Code: errcode.ExportDriverError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown export driver %q", driver),
	}
}

// SQLiteOpenError is returned when the SQLite warehouse cannot be opened.
func SQLiteOpenError(path string, err error) error {
	msg := "Cannot open SQLite warehouse <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open %s: %w", path, err),
	}
}

// ExportSchemaError is returned when warehouse tables cannot be created.
func ExportSchemaError(table string, err error) error {
	msg := `Cannot prepare warehouse table <em>%s</em>

<em>Possible causes:</em>
  - Insufficient database permissions
  - A table with the same name and a different layout exists`

	vars := []any{table}

	return &gn.Error{
		Code: errcode.ExportSchemaError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to prepare table %s: %w", table, err),
	}
}

// ExportWriteError is returned when rows of a season cannot be written.
func ExportWriteError(season string, err error) error {
	msg := "Cannot export season <em>%s</em>"
	vars := []any{season}

	return &gn.Error{
		Code: errcode.ExportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to export season %s: %w", season, err),
	}
}
