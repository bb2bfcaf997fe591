// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/weaponstats/wsdb/internal/iodb"
	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/db"
)

// SQLiteConfig returns a configuration that points to a fresh SQLite file
// inside a temporary directory. The directory also serves as HomeDir, so
// tests never touch real config or log files.
func SQLiteConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(dir),
		config.OptDatabaseDriver(config.DriverSQLite),
		config.OptDatabaseSQLitePath(filepath.Join(dir, "wsdb_test.sqlite")),
		config.OptWithProgress(false),
		config.OptJobsNumber(2),
	})
	return cfg
}

// SQLiteOperator returns a connected operator for a fresh SQLite file
// together with its configuration. The operator is closed when the test
// finishes.
func SQLiteOperator(t *testing.T) (db.Operator, *config.Config) {
	t.Helper()

	cfg := SQLiteConfig(t)
	op, err := iodb.Open(context.Background(), &cfg.Database)
	if err != nil {
		t.Fatalf("Failed to open SQLite database: %v", err)
	}
	t.Cleanup(func() { op.Close() })
	return op, cfg
}
