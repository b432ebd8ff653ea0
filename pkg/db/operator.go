package db

import (
	"context"

	"github.com/gnames/ednamap/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines the interface for basic database management
// operations. It provides connection lifecycle management and exposes
// the pgxpool.Pool for the exporter to execute its specialized SQL
// operations internally.
//
// Design rationale:
// - Keeps interface minimal to avoid bloat with mixed semantics
// - Pool() enables the exporter to use CopyFrom for bulk inserts
// - Schema creation and migration are handled by GORM AutoMigrate
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool for transactions, bulk
	// inserts (CopyFrom), and custom queries.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public
	// schema. Used to decide whether an export overwrites data.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema. Used when
	// an export overwrites a previous one.
	DropAllTables(ctx context.Context) error
}
