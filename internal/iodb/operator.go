// Package iodb implements database operations for PostgreSQL (pgxpool)
// and SQLite (modernc.org/sqlite). This is an impure I/O package that
// implements contracts defined in pkg/.
package iodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/db"
)

// Pooler is implemented by operators backed by a pgxpool.Pool.
type Pooler interface {
	Pool() *pgxpool.Pool
}

// pgxOperator implements db.Operator interface using
// pgxpool for connection pooling.
type pgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new PostgreSQL operator
// (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

// Connect establishes a connection pool to PostgreSQL.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	maxConns := int32(cfg.MaxConns)
	if maxConns < 1 {
		maxConns = 1
	}
	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = min(2, maxConns)
	poolConfig.MaxConnLifetime = 0 // No lifetime limit
	poolConfig.MaxConnIdleTime = 0 // No idle timeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	p.pool = pool
	return nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

func (p *pgxOperator) Dialect() db.Dialect {
	return db.Postgres
}

// Pool returns the underlying pgxpool.Pool for GORM.
func (p *pgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

func (p *pgxOperator) Exec(
	ctx context.Context,
	query string,
	args ...any,
) (int64, error) {
	if p.pool == nil {
		return 0, NotConnectedError()
	}
	tag, err := p.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, ExecError(query, err)
	}
	return tag.RowsAffected(), nil
}

func (p *pgxOperator) Count(
	ctx context.Context,
	query string,
	args ...any,
) (int64, error) {
	if p.pool == nil {
		return 0, NotConnectedError()
	}
	var res int64
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&res); err != nil {
		return 0, CountError(query, err)
	}
	return res, nil
}

func (p *pgxOperator) Begin(ctx context.Context) (db.Tx, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, BeginTxError(err)
	}
	return &pgxTx{tx: tx}, nil
}

// TableExists checks if a table exists in the current
// database.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)
	`

	var exists bool
	err := p.pool.QueryRow(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return exists, nil
}

// HasTables checks if the database has any tables in the
// public schema.
func (p *pgxOperator) HasTables(
	ctx context.Context,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
		)
	`

	var hasTables bool
	err := p.pool.QueryRow(ctx, query).Scan(&hasTables)
	if err != nil {
		return false, TableCheckError(err)
	}

	return hasTables, nil
}

type pgxTx struct {
	tx pgx.Tx
}

func (t *pgxTx) Exec(
	ctx context.Context,
	query string,
	args ...any,
) (int64, error) {
	tag, err := t.tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, ExecError(query, err)
	}
	return tag.RowsAffected(), nil
}

func (t *pgxTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return CommitTxError(err)
	}
	return nil
}

func (t *pgxTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}
