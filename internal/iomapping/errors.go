package iomapping

import (
	"fmt"

	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/gnames/gn"
)

// MappingReadError creates an error for when team_names.yaml cannot be
// loaded.
func MappingReadError(path string, err error) error {
	msg := `Cannot load team name mapping

<em>Mapping file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Permission denied

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Remove the file to restore the default mapping`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.MappingReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load team name mapping: %w", err),
	}
}

// MappingEmptyError creates an error for a mapping without entries.
func MappingEmptyError(path string) error {
	msg := "Team name mapping <em>%s</em> has no entries"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.MappingEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s: %w", path, errEmpty),
	}
}
