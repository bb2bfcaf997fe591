package db

import (
	"context"

	"github.com/weaponstats/wsdb/pkg/config"
)

// Operator defines the interface for the relational store used by the
// lifecycle components (SchemaManager, Populator, Validator).
//
// The surface is kept to the primitives the loader needs: statement
// execution, transactions and scalar count queries. Statements use `$n`
// placeholders; implementations rebind them for their dialect.
type Operator interface {
	// Connect establishes a connection to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection.
	Close() error

	// Dialect reports which SQL dialect the store speaks.
	Dialect() Dialect

	// Exec executes a statement outside of a transaction and returns
	// the number of affected rows.
	Exec(ctx context.Context, query string, args ...any) (int64, error)

	// Count runs a query returning a single integer (usually COUNT(*)).
	Count(ctx context.Context, query string, args ...any) (int64, error)

	// Begin starts a transaction.
	Begin(ctx context.Context) (Tx, error)

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any user tables.
	// Used to refuse populate on an uninitialized database.
	HasTables(ctx context.Context) (bool, error)
}

// Tx is a single database transaction. After Commit or Rollback the
// transaction cannot be used anymore. Rollback after a successful Commit
// is a no-op, so it is safe to defer it.
type Tx interface {
	// Exec executes a statement inside the transaction and returns the
	// number of affected rows.
	Exec(ctx context.Context, query string, args ...any) (int64, error)

	// Commit makes all changes of the transaction visible.
	Commit(ctx context.Context) error

	// Rollback discards all changes of the transaction.
	Rollback(ctx context.Context) error
}
