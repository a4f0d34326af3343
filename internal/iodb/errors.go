package iodb

import (
	"fmt"

	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError is returned when the warehouse connection fails.
func ConnectionError(host string, port int, database, user string,
	err error) error {
	msg := `Cannot connect to PostgreSQL database

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Export configuration is incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running: <em>pg_isready -h %s -p %d</em>
  2. Verify the database exists: <em>psql -h %s -U %s -l</em>
  3. Review the export section of ~/.config/fpltable/config.yaml
     Database: %s`

	vars := []any{host, port, host, user, database}

	return &gn.Error{
		Code: errcode.ExportConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// NotConnectedError is returned when the pool is used before Connect.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.ExportConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError is returned when checking for tables fails.
func TableCheckError(err error) error {
	msg := "Cannot verify warehouse tables"

	return &gn.Error{
		Code: errcode.ExportSchemaError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to check database tables: %w", err),
	}
}
