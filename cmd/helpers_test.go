package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/lifecycle"
)

func TestDBLabel(t *testing.T) {
	cfg := config.New()
	assert.Equal(t, "postgres@localhost:5432/weapons", dbLabel(&cfg.Database))

	cfg.Update([]config.Option{config.OptDatabasePassword("s3cret")})
	assert.NotContains(t, dbLabel(&cfg.Database), "s3cret")

	cfg.Update([]config.Option{
		config.OptDatabaseDriver(config.DriverSQLite),
		config.OptDatabaseSQLitePath("/tmp/w.sqlite"),
	})
	assert.Equal(t, "sqlite:/tmp/w.sqlite", dbLabel(&cfg.Database))
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		res   bool
	}{
		{"yes\n", true},
		{"Y\n", true},
		{"  YES  \n", true},
		{"no\n", false},
		{"\n", false},
		{"yes", true},
		{"", false},
	}

	for _, v := range tests {
		res, err := confirm(strings.NewReader(v.input), "Continue?")
		require.NoError(t, err, v.input)
		assert.Equal(t, v.res, res, v.input)
	}
}

func testReport() *lifecycle.Report {
	return &lifecycle.Report{
		IsValid: false,
		Issues:  []string{"Table 'weapon_ammo_stats' is empty"},
		TableCounts: map[string]int64{
			"categories":        1,
			"weapons":           1,
			"barrels":           1,
			"ammo_types":        1,
			"weapon_ammo_stats": 0,
			"configurations":    1,
			"config_dropoffs":   1_200,
		},
	}
}

func TestWriteReport(t *testing.T) {
	buf := new(bytes.Buffer)
	writeReport(buf, testReport())

	out := buf.String()
	assert.Contains(t, out, "1,200")
	assert.Contains(t, out, "Issues:")
	assert.Contains(t, out, "- Table 'weapon_ammo_stats' is empty")
	assert.Less(t, strings.Index(out, "categories"), strings.Index(out, "config_dropoffs"))
}

func TestWriteReportJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, writeReportJSON(buf, testReport()))

	var res map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, false, res["is_valid"])
	assert.Len(t, res["issues"], 1)
	counts, ok := res["table_counts"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1_200), counts["config_dropoffs"])
}
