package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	t := structType(model)

	var columns []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))
}

func structType(model any) reflect.Type {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// Columns returns the db column names of a model in field order.
func Columns(model any) []string {
	t := structType(model)
	res := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("db"); tag != "" {
			res = append(res, tag)
		}
	}
	return res
}

// Values returns field values of a model in Columns order.
func Values(model any) []any {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()
	res := make([]any, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("db") != "" {
			res = append(res, v.Field(i).Interface())
		}
	}
	return res
}

// JoinedTable DDL methods
func (jt JoinedTable) TableName() string {
	return "joined_tables"
}

func (jt JoinedTable) TableDDL() string {
	return generateDDL(jt, jt.TableName())
}

func (jt JoinedTable) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_joined_tables_season " +
			"ON joined_tables(season);",
	}
}

// PlayerSummary DDL methods
func (ps PlayerSummary) TableName() string {
	return "player_summaries"
}

func (ps PlayerSummary) TableDDL() string {
	return generateDDL(ps, ps.TableName())
}

func (ps PlayerSummary) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_player_summaries_season " +
			"ON player_summaries(season);",
		"CREATE INDEX IF NOT EXISTS idx_player_summaries_team " +
			"ON player_summaries(team);",
	}
}
