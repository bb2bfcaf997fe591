package iodb

import (
	"context"

	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/db"
)

// New creates an operator for the given driver (without connecting).
func New(driver string) (db.Operator, error) {
	switch driver {
	case config.DriverPostgres:
		return NewPgxOperator(), nil
	case config.DriverSQLite:
		return NewSQLiteOperator(), nil
	default:
		return nil, UnknownDriverError(driver)
	}
}

// Open creates an operator for cfg.Driver and connects it.
func Open(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) (db.Operator, error) {
	op, err := New(cfg.Driver)
	if err != nil {
		return nil, err
	}
	if err = op.Connect(ctx, cfg); err != nil {
		return nil, err
	}
	return op, nil
}
