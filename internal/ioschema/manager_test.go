package ioschema_test

import (
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weaponstats/wsdb/internal/iodb"
	"github.com/weaponstats/wsdb/internal/ioschema"
	"github.com/weaponstats/wsdb/internal/iotesting"
	"github.com/weaponstats/wsdb/pkg/db"
	"github.com/weaponstats/wsdb/pkg/errcode"
	"github.com/weaponstats/wsdb/pkg/schema"
)

func TestNewManager(t *testing.T) {
	mgr := ioschema.NewManager(iodb.NewPgxOperator())
	require.NotNil(t, mgr)
}

func assertTables(t *testing.T, op db.Operator, exist bool) {
	t.Helper()
	ctx := context.Background()
	for _, v := range schema.TableNames() {
		ok, err := op.TableExists(ctx, v)
		require.NoError(t, err)
		assert.Equal(t, exist, ok, v)
	}
}

func countRows(t *testing.T, op db.Operator, table string) int64 {
	t.Helper()
	n, err := op.Count(context.Background(), "SELECT COUNT(*) FROM "+table)
	require.NoError(t, err)
	return n
}

func seed(t *testing.T, op db.Operator) {
	t.Helper()
	ctx := context.Background()
	stmts := []string{
		"INSERT INTO categories (category_id, category_name) VALUES (1, 'Assault Rifles')",
		"INSERT INTO weapons (weapon_id, weapon_name, category_id) VALUES (1, 'M4', 1)",
		"INSERT INTO barrels (barrel_id, barrel_name) VALUES (1, 'Standard')",
		"INSERT INTO ammo_types (ammo_id, ammo_type_name) VALUES (1, '5.56mm')",
		"INSERT INTO configurations (config_id, weapon_id, barrel_id, ammo_id, velocity) VALUES (1, 1, 1, 1, 800)",
		`INSERT INTO config_dropoffs (config_id, "range", damage) VALUES (1, 10, 25.0)`,
		"INSERT INTO weapon_ammo_stats (weapon_id, ammo_id, magazine_size, headshot_multiplier) VALUES (1, 1, 30, 1.5)",
	}
	for _, v := range stmts {
		_, err := op.Exec(ctx, v)
		require.NoError(t, err, v)
	}
}

func testLifecycle(t *testing.T, op db.Operator) {
	ctx := context.Background()
	mgr := ioschema.NewManager(op)

	assertTables(t, op, false)

	require.NoError(t, mgr.Create(ctx))
	assertTables(t, op, true)

	// create is idempotent and keeps data
	seed(t, op)
	require.NoError(t, mgr.Create(ctx))
	assert.Equal(t, int64(1), countRows(t, op, "weapons"))

	// pellet_count defaults to 1
	n, err := op.Count(ctx, "SELECT pellet_count FROM weapon_ammo_stats")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, mgr.Clear(ctx))
	assertTables(t, op, true)
	for _, v := range schema.TableNames() {
		assert.Zero(t, countRows(t, op, v), v)
	}

	seed(t, op)
	require.NoError(t, mgr.Reset(ctx))
	assertTables(t, op, true)
	for _, v := range schema.TableNames() {
		assert.Zero(t, countRows(t, op, v), v)
	}

	// reset works on an empty database as well
	require.NoError(t, mgr.Reset(ctx))
	assertTables(t, op, true)
}

func TestManager_SQLite(t *testing.T) {
	op, _ := iotesting.SQLiteOperator(t)
	testLifecycle(t, op)
}

func TestManager_Postgres(t *testing.T) {
	op, _ := iotesting.PostgresOperator(t)
	testLifecycle(t, op)
}

func TestManager_UniqueNames(t *testing.T) {
	ctx := context.Background()
	op, _ := iotesting.SQLiteOperator(t)
	require.NoError(t, ioschema.NewManager(op).Create(ctx))

	_, err := op.Exec(ctx,
		"INSERT INTO barrels (barrel_id, barrel_name) VALUES (1, 'Long')")
	require.NoError(t, err)
	_, err = op.Exec(ctx,
		"INSERT INTO barrels (barrel_id, barrel_name) VALUES (2, 'Long')")
	assert.Error(t, err)
}

func TestMigrate_SQLiteUnsupported(t *testing.T) {
	op, _ := iotesting.SQLiteOperator(t)
	err := ioschema.NewManager(op).Migrate(context.Background())
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SchemaMigrateUnsupportedError, gnErr.Code)
}

func TestMigrate_Postgres(t *testing.T) {
	ctx := context.Background()
	op, _ := iotesting.PostgresOperator(t)
	mgr := ioschema.NewManager(op)

	require.NoError(t, mgr.Migrate(ctx))
	assertTables(t, op, true)

	// migrating a schema created from DDL keeps its data
	require.NoError(t, mgr.Reset(ctx))
	seed(t, op)
	require.NoError(t, mgr.Migrate(ctx))
	assert.Equal(t, int64(1), countRows(t, op, "config_dropoffs"))
}
