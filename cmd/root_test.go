package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRootCmd(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "wsdb", cmd.Use)
	assert.NotNil(t, cmd.PersistentPreRunE, "bootstrap should be set")
	assert.NotNil(t, cmd.RunE)
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.SilenceUsage)

	var names []string
	for _, v := range cmd.Commands() {
		names = append(names, v.Name())
	}
	for _, v := range []string{"create", "populate", "validate", "clear", "reset", "migrate", "optimize"} {
		assert.Contains(t, names, v)
	}
}

func TestGetRootCmd_Version(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		cmd := getRootCmd()
		cmd.Version = "version: v1.2.3\nbuild:   abc123"

		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{flag})

		require.NoError(t, cmd.Execute(), flag)
		assert.Contains(t, buf.String(), "v1.2.3", flag)
		assert.Contains(t, buf.String(), "abc123", flag)
		assert.NotContains(t, buf.String(), "wsdb version", flag)
	}
}

func TestGetRootCmd_HelpText(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	helpText := buf.String()
	assert.Contains(t, helpText, "WSDB_DATABASE_HOST")
	assert.Contains(t, helpText, "--driver")
	assert.Contains(t, helpText, "--sqlite-path")
	assert.Contains(t, helpText, "populate")
}

func TestGetRootCmd_PersistentFlags(t *testing.T) {
	cmd := getRootCmd()

	driver := cmd.PersistentFlags().Lookup("driver")
	require.NotNil(t, driver)
	assert.Equal(t, "D", driver.Shorthand)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("sqlite-path"))
}

func TestGetRootCmd_IndependentInstances(t *testing.T) {
	cmd1 := getRootCmd()
	cmd2 := getRootCmd()
	assert.NotSame(t, cmd1, cmd2)

	cmd1.Version = "version1"
	cmd2.Version = "version2"
	assert.Equal(t, "version1", cmd1.Version)
	assert.Equal(t, "version2", cmd2.Version)
}

func TestGetRootCmd_InvalidCommand(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"nonexistent-command"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown"))
}
