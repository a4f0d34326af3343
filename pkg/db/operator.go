// Package db describes the PostgreSQL connection used by the warehouse
// export.
package db

import (
	"context"

	"github.com/edwardanalytics/fpltable/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator manages the connection pool of the warehouse. Export code
// uses Pool() directly for transactions and CopyFrom bulk inserts.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(ctx context.Context, cfg *config.ExportConfig) error

	// Close closes the connection pool.
	Close() error

	// Pool returns the underlying pool, nil before Connect.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the public schema.
	TableExists(ctx context.Context, tableName string) (bool, error)
}
