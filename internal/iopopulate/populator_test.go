package iopopulate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weaponstats/wsdb/internal/iometrics"
	"github.com/weaponstats/wsdb/internal/iopopulate"
	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/document"
	"github.com/weaponstats/wsdb/pkg/errcode"
	"github.com/weaponstats/wsdb/pkg/schema"
)

func TestPopulate(t *testing.T) {
	ctx := context.Background()
	op, cfg := setup(t)

	doc := &document.Document{
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

	stats, err := iopopulate.New(cfg, op, nil).Populate(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.TotalInserted())

	assert.Equal(t, map[string]int64{
		schema.CategoriesTable:      1,
		schema.WeaponsTable:         1,
		schema.BarrelsTable:         1,
		schema.AmmoTypesTable:       1,
		schema.WeaponAmmoStatsTable: 0,
		schema.ConfigurationsTable:  1,
		schema.ConfigDropoffsTable:  2,
	}, tableCounts(t, op))

	n, err := op.Count(ctx,
		`SELECT COUNT(*) FROM config_dropoffs WHERE config_id = 1 AND "range" IN (10, 50)`)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestPopulateFrom(t *testing.T) {
	ctx := context.Background()
	op, cfg := setup(t)
	metricsFile := filepath.Join(t.TempDir(), "wsdb.prom")
	cfg.Update([]config.Option{config.OptMetricsFile(metricsFile)})

	pop := iopopulate.New(cfg, op, iometrics.New())
	stats, err := pop.PopulateFrom(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(sampleRows(t).Total()), stats.TotalInserted())

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `wsdb_rows_inserted_total{table="weapons"} 3`)

	// the same document in YAML form adds nothing
	before := tableCounts(t, op)
	stats, err = pop.PopulateFrom(ctx, filepath.Join("testdata", "weapons.yaml"))
	require.NoError(t, err)
	assert.Zero(t, stats.TotalInserted())
	assert.Equal(t, int64(sampleRows(t).Total()), stats.TotalIgnored())
	assert.Equal(t, before, tableCounts(t, op))
}

func TestPopulateFrom_Broken(t *testing.T) {
	ctx := context.Background()
	op, cfg := setup(t)
	pop := iopopulate.New(cfg, op, nil)

	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"categories": [`), 0644))

	tests := []struct {
		msg      string
		location string
		code     gn.ErrorCode
	}{
		{"malformed json", broken, errcode.DocumentParseError},
		{"missing file", filepath.Join(dir, "none.json"), errcode.SourceLocationError},
	}

	for _, v := range tests {
		_, err := pop.PopulateFrom(ctx, v.location)
		require.Error(t, err, v.msg)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
	}

	for k, v := range tableCounts(t, op) {
		assert.Zero(t, v, k)
	}
}
