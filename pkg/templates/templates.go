// Package templates provides embedded YAML configuration templates.
package templates

import _ "embed"

// ConfigYAML contains the default config.yaml template for application configuration.
//
//go:embed config.yaml
var ConfigYAML string

// TeamNamesYAML contains the default team_names.yaml that maps fantasy
// team names to the names used by the official standings.
//
//go:embed team_names.yaml
var TeamNamesYAML string
