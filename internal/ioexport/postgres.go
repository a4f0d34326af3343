package ioexport

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edwardanalytics/fpltable/pkg/db"
	"github.com/edwardanalytics/fpltable/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type postgresTarget struct {
	operator  db.Operator
	batchSize int
}

func newPostgres(op db.Operator, batchSize int) *postgresTarget {
	return &postgresTarget{operator: op, batchSize: batchSize}
}

func (t *postgresTarget) migrate(ctx context.Context) error {
	pool := t.operator.Pool()
	if pool == nil {
		return ExportSchemaError("all", fmt.Errorf("not connected"))
	}

	exists, err := t.operator.TableExists(ctx, schema.JoinedTable{}.TableName())
	if err != nil {
		return err
	}
	slog.Info("Preparing warehouse schema", "tables_exist", exists)

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return ExportSchemaError("all", err)
	}

	if err = schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return ExportSchemaError("all", err)
	}
	return nil
}

func (t *postgresTarget) replace(
	ctx context.Context,
	season string,
	joined []schema.JoinedTable,
	players []schema.PlayerSummary,
) error {
	pool := t.operator.Pool()
	tx, err := pool.Begin(ctx)
	if err != nil {
		return ExportWriteError(season, err)
	}
	defer tx.Rollback(ctx)

	jt := schema.JoinedTable{}
	err = copyRows(ctx, tx, season, jt.TableName(), jt, joined, t.batchSize)
	if err != nil {
		return err
	}
	ps := schema.PlayerSummary{}
	err = copyRows(ctx, tx, season, ps.TableName(), ps, players, t.batchSize)
	if err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return ExportWriteError(season, err)
	}
	return nil
}

// copyRows deletes rows of the season from a table and bulk inserts new
// ones with CopyFrom in batches.
func copyRows[T any](
	ctx context.Context,
	tx pgx.Tx,
	season, table string,
	model T,
	rows []T,
	batchSize int,
) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE season = $1", table)
	if _, err := tx.Exec(ctx, q, season); err != nil {
		return ExportWriteError(season, err)
	}

	cols := schema.Columns(model)
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		records := make([][]any, 0, end-start)
		for _, r := range rows[start:end] {
			records = append(records, schema.Values(r))
		}
		_, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{table},
			cols,
			pgx.CopyFromRows(records),
		)
		if err != nil {
			return ExportWriteError(season, err)
		}
	}
	return nil
}

func (t *postgresTarget) close() error {
	return t.operator.Close()
}
