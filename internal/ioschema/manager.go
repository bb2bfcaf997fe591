// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that issues DDL generated from pkg/schema models and wraps
// GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/weaponstats/wsdb/internal/iodb"
	"github.com/weaponstats/wsdb/pkg/db"
	"github.com/weaponstats/wsdb/pkg/lifecycle"
	"github.com/weaponstats/wsdb/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates all tables in dependency order, then their indexes.
// Existing tables and indexes are kept.
func (m *manager) Create(ctx context.Context) error {
	d := m.operator.Dialect()
	tables := schema.Tables()

	for _, tbl := range tables {
		if _, err := m.operator.Exec(ctx, tbl.TableDDL(d)); err != nil {
			return CreateTableError(tbl.TableName(), err)
		}
	}

	var idxNum int
	for _, tbl := range tables {
		for _, idx := range tbl.IndexDDL() {
			if _, err := m.operator.Exec(ctx, idx); err != nil {
				return IndexError(tbl.TableName(), err)
			}
			idxNum++
		}
	}

	slog.Info("Schema created",
		"dialect", d.String(),
		"tables", len(tables),
		"indexes", idxNum,
	)
	return nil
}

// Reset drops all tables in reverse dependency order with sequences
// of their keys and creates the schema again.
func (m *manager) Reset(ctx context.Context) error {
	d := m.operator.Dialect()

	names := schema.TableNames()
	for i := len(names) - 1; i >= 0; i-- {
		if _, err := m.operator.Exec(ctx, dropTableSQL(d, names[i])); err != nil {
			return DropTableError(names[i], err)
		}
	}

	if d.SupportsSequences() {
		for _, seq := range schema.Sequences() {
			if _, err := m.operator.Exec(ctx, dropSequenceSQL(seq)); err != nil {
				return DropSequenceError(seq, err)
			}
		}
	}
	slog.Info("Schema dropped", "dialect", d.String(), "tables", len(names))

	return m.Create(ctx)
}

// Clear deletes rows of all tables in one transaction. Schema and
// sequences are kept.
func (m *manager) Clear(ctx context.Context) error {
	tx, err := m.operator.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	names := schema.TableNames()
	var total int64
	for i := len(names) - 1; i >= 0; i-- {
		n, err := tx.Exec(ctx, deleteSQL(names[i]))
		if err != nil {
			return ClearTableError(names[i], err)
		}
		total += n
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}

	slog.Info("Data cleared", "rows", total)
	return nil
}

// Migrate updates the schema to the latest version
// using GORM AutoMigrate. Only PostgreSQL is supported.
func (m *manager) Migrate(ctx context.Context) error {
	pooler, ok := m.operator.(iodb.Pooler)
	if !ok {
		return MigrateUnsupportedError(m.operator.Dialect().String())
	}

	pool := pooler.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}

	slog.Info("Schema migrated", "models", len(schema.AllModels()))
	return nil
}
