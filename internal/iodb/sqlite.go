package iodb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/db"
	_ "modernc.org/sqlite"
)

// sqliteOperator implements db.Operator interface for a SQLite file.
// SQLite allows a single writer, so the pool holds one connection.
type sqliteOperator struct {
	db *sql.DB
}

// NewSQLiteOperator creates a new SQLite operator
// (without connecting).
func NewSQLiteOperator() db.Operator {
	return &sqliteOperator{}
}

// Connect opens the SQLite file from cfg.SQLitePath, creating it if
// necessary. Foreign keys are enforced.
func (s *sqliteOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		cfg.SQLitePath,
	)

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return SQLiteConnectionError(cfg.SQLitePath, err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return SQLiteConnectionError(cfg.SQLitePath, err)
	}

	s.db = sqlDB
	return nil
}

func (s *sqliteOperator) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *sqliteOperator) Dialect() db.Dialect {
	return db.SQLite
}

func (s *sqliteOperator) Exec(
	ctx context.Context,
	query string,
	args ...any,
) (int64, error) {
	if s.db == nil {
		return 0, NotConnectedError()
	}
	res, err := s.db.ExecContext(ctx, db.SQLite.Rebind(query), args...)
	if err != nil {
		return 0, ExecError(query, err)
	}
	return rowsAffected(res), nil
}

func (s *sqliteOperator) Count(
	ctx context.Context,
	query string,
	args ...any,
) (int64, error) {
	if s.db == nil {
		return 0, NotConnectedError()
	}
	var res int64
	row := s.db.QueryRowContext(ctx, db.SQLite.Rebind(query), args...)
	if err := row.Scan(&res); err != nil {
		return 0, CountError(query, err)
	}
	return res, nil
}

func (s *sqliteOperator) Begin(ctx context.Context) (db.Tx, error) {
	if s.db == nil {
		return nil, NotConnectedError()
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, BeginTxError(err)
	}
	return &sqlTx{tx: tx}, nil
}

func (s *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name = ?1
	`
	var n int64
	err := s.db.QueryRowContext(ctx, query, tableName).Scan(&n)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	return n > 0, nil
}

func (s *sqliteOperator) HasTables(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
	`
	var n int64
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return false, TableCheckError(err)
	}
	return n > 0, nil
}

type sqlTx struct {
	tx *sql.Tx
}

func (t *sqlTx) Exec(
	ctx context.Context,
	query string,
	args ...any,
) (int64, error) {
	res, err := t.tx.ExecContext(ctx, db.SQLite.Rebind(query), args...)
	if err != nil {
		return 0, ExecError(query, err)
	}
	return rowsAffected(res), nil
}

func (t *sqlTx) Commit(context.Context) error {
	if err := t.tx.Commit(); err != nil {
		return CommitTxError(err)
	}
	return nil
}

func (t *sqlTx) Rollback(context.Context) error {
	err := t.tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

// rowsAffected ignores the error, modernc.org/sqlite always
// reports the number of changes.
func rowsAffected(res sql.Result) int64 {
	n, _ := res.RowsAffected()
	return n
}
