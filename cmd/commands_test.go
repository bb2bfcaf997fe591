package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	tests := []struct {
		use      string
		get      func() *cobra.Command
		short    string
		examples []string
	}{
		{"create", getCreateCmd, "schema", []string{"wsdb create"}},
		{"populate", getPopulateCmd, "weapons document",
			[]string{"wsdb populate --source weapons.json", "s3://"}},
		{"validate", getValidateCmd, "references", []string{"wsdb validate --json"}},
		{"clear", getClearCmd, "data", []string{"wsdb clear --force"}},
		{"reset", getResetCmd, "schema", []string{"wsdb reset -f"}},
		{"migrate", getMigrateCmd, "schema", []string{"wsdb migrate"}},
		{"optimize", getOptimizeCmd, "statistics", []string{"wsdb optimize"}},
	}

	for _, v := range tests {
		cmd := v.get()
		require.NotNil(t, cmd, v.use)
		assert.Equal(t, v.use, cmd.Use)
		assert.Contains(t, cmd.Short, v.short, v.use)
		assert.NotNil(t, cmd.RunE, v.use)

		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"--help"})
		require.NoError(t, cmd.Execute(), v.use)
		assert.Contains(t, buf.String(), "Examples:", v.use)
		for _, ex := range v.examples {
			assert.Contains(t, buf.String(), ex, v.use)
		}
	}
}

func TestGetPopulateCmd_Flags(t *testing.T) {
	cmd := getPopulateCmd()
	assert.Equal(t, []string{"add"}, cmd.Aliases)

	tests := []struct {
		name, short, def string
	}{
		{"source", "s", ""},
		{"format", "F", ""},
		{"no-progress", "", "false"},
	}
	for _, v := range tests {
		flag := cmd.Flags().Lookup(v.name)
		require.NotNil(t, flag, v.name)
		assert.Equal(t, v.short, flag.Shorthand, v.name)
		assert.Equal(t, v.def, flag.DefValue, v.name)
	}
}

func TestForceFlags(t *testing.T) {
	for _, cmd := range []*cobra.Command{getClearCmd(), getResetCmd()} {
		flag := cmd.Flags().Lookup("force")
		require.NotNil(t, flag, cmd.Use)
		assert.Equal(t, "f", flag.Shorthand, cmd.Use)
		assert.Equal(t, "false", flag.DefValue, cmd.Use)
	}
}

func TestGetValidateCmd_JSONFlag(t *testing.T) {
	flag := getValidateCmd().Flags().Lookup("json")
	require.NotNil(t, flag)
	assert.Equal(t, "j", flag.Shorthand)
}
