package ioexport

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/edwardanalytics/fpltable/internal/iofs"
	"github.com/edwardanalytics/fpltable/pkg/schema"
	_ "modernc.org/sqlite"
)

type sqliteTarget struct {
	path string
	db   *sql.DB
}

func newSQLite(ctx context.Context, path string) (*sqliteTarget, error) {
	if err := iofs.TouchDir(filepath.Dir(path)); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, SQLiteOpenError(path, err)
	}
	// a single writer keeps the file lock simple
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, SQLiteOpenError(path, err)
	}
	return &sqliteTarget{path: path, db: db}, nil
}

func (t *sqliteTarget) migrate(ctx context.Context) error {
	for _, m := range schema.AllModels() {
		stmts := append([]string{m.TableDDL()}, m.IndexDDL()...)
		for _, q := range stmts {
			if _, err := t.db.ExecContext(ctx, q); err != nil {
				return ExportSchemaError(m.TableName(), err)
			}
		}
	}
	return nil
}

func (t *sqliteTarget) replace(
	ctx context.Context,
	season string,
	joined []schema.JoinedTable,
	players []schema.PlayerSummary,
) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return ExportWriteError(season, err)
	}
	defer tx.Rollback()

	jt := schema.JoinedTable{}
	if err = insertRows(ctx, tx, season, jt.TableName(), jt, joined); err != nil {
		return err
	}
	ps := schema.PlayerSummary{}
	if err = insertRows(ctx, tx, season, ps.TableName(), ps, players); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return ExportWriteError(season, err)
	}
	return nil
}

// insertRows deletes rows of the season from a table and inserts new
// ones.
func insertRows[T any](
	ctx context.Context,
	tx *sql.Tx,
	season, table string,
	model T,
	rows []T,
) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE season = ?", table)
	if _, err := tx.ExecContext(ctx, q, season); err != nil {
		return ExportWriteError(season, err)
	}
	if len(rows) == 0 {
		return nil
	}

	cols := schema.Columns(model)
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	q = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), marks)
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return ExportWriteError(season, err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err = stmt.ExecContext(ctx, schema.Values(r)...); err != nil {
			return ExportWriteError(season, err)
		}
	}
	return nil
}

func (t *sqliteTarget) close() error {
	return t.db.Close()
}
