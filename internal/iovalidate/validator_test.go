package iovalidate_test

import (
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weaponstats/wsdb/internal/iopopulate"
	"github.com/weaponstats/wsdb/internal/ioschema"
	"github.com/weaponstats/wsdb/internal/iotesting"
	"github.com/weaponstats/wsdb/internal/iovalidate"
	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/db"
	"github.com/weaponstats/wsdb/pkg/document"
	"github.com/weaponstats/wsdb/pkg/errcode"
	"github.com/weaponstats/wsdb/pkg/schema"
)

func m4Document() *document.Document {
	return &document.Document{
		Categories: []document.Category{
			{Name: "Assault Rifles", Weapons: []document.Weapon{
				{
					Name: "M4",
					Stats: []document.Stat{
						{
							BarrelType: "Standard",
							AmmoType:   "5.56mm",
							Velocity:   800,
							Dropoffs: []document.Dropoff{
								{Range: 10, Damage: 25.0},
								{Range: 50, Damage: 18.0},
							},
						},
					},
				},
			}},
		},
	}
}

func setup(t *testing.T) (db.Operator, *config.Config) {
	t.Helper()
	op, cfg := iotesting.SQLiteOperator(t)
	require.NoError(t, ioschema.NewManager(op).Create(context.Background()))
	return op, cfg
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	op, cfg := setup(t)
	_, err := iopopulate.New(cfg, op, nil).Populate(ctx, m4Document())
	require.NoError(t, err)

	report, err := iovalidate.New(cfg, op).Validate(ctx)
	require.NoError(t, err)
	assert.False(t, report.IsValid)
	assert.Equal(t, []string{"Table 'weapon_ammo_stats' is empty"}, report.Issues)
	assert.Equal(t, map[string]int64{
		schema.CategoriesTable:      1,
		schema.WeaponsTable:         1,
		schema.BarrelsTable:         1,
		schema.AmmoTypesTable:       1,
		schema.WeaponAmmoStatsTable: 0,
		schema.ConfigurationsTable:  1,
		schema.ConfigDropoffsTable:  2,
	}, report.TableCounts)
}

func TestValidate_Sample(t *testing.T) {
	ctx := context.Background()
	op, cfg := setup(t)
	_, err := iopopulate.New(cfg, op, nil).PopulateFrom(ctx, "")
	require.NoError(t, err)

	report, err := iovalidate.New(cfg, op).Validate(ctx)
	require.NoError(t, err)
	assert.True(t, report.IsValid)
	assert.Empty(t, report.Issues)
	assert.Len(t, report.TableCounts, 7)

	// validation never changes data
	again, err := iovalidate.New(cfg, op).Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, report, again)
}

func TestValidate_AfterClear(t *testing.T) {
	ctx := context.Background()
	op, cfg := setup(t)
	_, err := iopopulate.New(cfg, op, nil).PopulateFrom(ctx, "")
	require.NoError(t, err)
	require.NoError(t, ioschema.NewManager(op).Clear(ctx))

	report, err := iovalidate.New(cfg, op).Validate(ctx)
	require.NoError(t, err)
	assert.False(t, report.IsValid)

	var issues []string
	for _, v := range schema.TableNames() {
		issues = append(issues, "Table '"+v+"' is empty")
		assert.Zero(t, report.TableCounts[v], v)
	}
	assert.Equal(t, issues, report.Issues)
}

func TestValidate_Orphans(t *testing.T) {
	ctx := context.Background()
	op, cfg := setup(t)
	_, err := iopopulate.New(cfg, op, nil).PopulateFrom(ctx, "")
	require.NoError(t, err)

	// the SQLite operator keeps a single connection, so the pragma
	// applies to the statements below
	_, err = op.Exec(ctx, "PRAGMA foreign_keys = OFF")
	require.NoError(t, err)
	stmts := []string{
		"INSERT INTO weapons (weapon_id, weapon_name, category_id) VALUES (100, 'Ghost', 99)",
		"INSERT INTO configurations (config_id, weapon_id, barrel_id, ammo_id, velocity) VALUES (100, 1, 99, 1, 500)",
		"INSERT INTO configurations (config_id, weapon_id, barrel_id, ammo_id, velocity) VALUES (101, 99, 1, 1, 500)",
		`INSERT INTO config_dropoffs (config_id, "range", damage) VALUES (99, 10, 1.0)`,
		"INSERT INTO weapon_ammo_stats (weapon_id, ammo_id, magazine_size, headshot_multiplier) VALUES (1, 99, 10, 1.0)",
	}
	for _, v := range stmts {
		_, err = op.Exec(ctx, v)
		require.NoError(t, err, v)
	}

	report, err := iovalidate.New(cfg, op).Validate(ctx)
	require.NoError(t, err)
	assert.False(t, report.IsValid)
	assert.Equal(t, []string{
		"1 weapons reference non-existent categories",
		"2 configurations have invalid references",
		"1 dropoffs reference non-existent configurations",
		"1 ammo stats have invalid references",
	}, report.Issues)
}

func TestValidate_NoSchema(t *testing.T) {
	op, cfg := iotesting.SQLiteOperator(t)

	_, err := iovalidate.New(cfg, op).Validate(context.Background())
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Contains(t,
		[]gn.ErrorCode{errcode.ValidateCountError, errcode.ValidateIntegrityError},
		gnErr.Code)
}

func TestValidate_Postgres(t *testing.T) {
	ctx := context.Background()
	op, cfg := iotesting.PostgresOperator(t)
	require.NoError(t, ioschema.NewManager(op).Create(ctx))
	_, err := iopopulate.New(cfg, op, nil).Populate(ctx, m4Document())
	require.NoError(t, err)

	report, err := iovalidate.New(cfg, op).Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Table 'weapon_ammo_stats' is empty"}, report.Issues)
	assert.Equal(t, int64(2), report.TableCounts[schema.ConfigDropoffsTable])
}

func TestInvalidDataError(t *testing.T) {
	err := iovalidate.InvalidDataError(3)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ValidateInvalidDataError, gnErr.Code)
	assert.Equal(t, []any{3}, gnErr.Vars)
}
