package lifecycle

import (
	"context"
)

// SchemaManager defines the interface for database schema management.
// All statements are idempotent, it is safe to run them several times.
type SchemaManager interface {
	// Create creates tables in dependency order, then their indexes.
	// Existing tables are left untouched.
	Create(ctx context.Context) error

	// Reset drops all tables in reverse dependency order together with
	// their key sequences and creates the schema again.
	Reset(ctx context.Context) error

	// Clear deletes all rows in one transaction, leaving the schema and
	// sequences intact.
	Clear(ctx context.Context) error

	// Migrate updates the schema to the current models using GORM
	// AutoMigrate.
	Migrate(ctx context.Context) error
}
