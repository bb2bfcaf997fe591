package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weaponstats/wsdb/pkg/config"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "wsdb"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "wsdb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "wsdb", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "wsdb", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Database defaults
		assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "weapons", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, "wsdb.sqlite", cfg.Database.SQLitePath)
		assert.Equal(t, 1_000, cfg.Database.BatchSize)
		assert.Equal(t, 10, cfg.Database.MaxConns)

		assert.Equal(t, "us-east-1", cfg.S3.Region)
		assert.Empty(t, cfg.Source.Location)
		assert.Empty(t, cfg.MetricsFile)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
		assert.True(t, cfg.WithProgress)
	})
}

func TestOptionDatabaseDriver(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets sqlite",
			input:    "sqlite",
			expected: "sqlite",
		},
		{
			name:     "normalizes case and spaces",
			input:    "  SQLite ",
			expected: "sqlite",
		},
		{
			name:     "ignores unknown driver",
			input:    "mysql",
			expected: "postgres", // Should keep default
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "postgres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseDriver(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Driver)
		})
	}
}

func TestOptionsIgnoreBadInput(t *testing.T) {
	tests := []struct {
		msg string
		opt config.Option
		get func(*config.Config) any
		res any
	}{
		{
			msg: "host is trimmed",
			opt: config.OptDatabaseHost("  db.weapons.local "),
			get: func(c *config.Config) any { return c.Database.Host },
			res: "db.weapons.local",
		},
		{
			msg: "blank host keeps default",
			opt: config.OptDatabaseHost(" "),
			get: func(c *config.Config) any { return c.Database.Host },
			res: "localhost",
		},
		{
			msg: "port",
			opt: config.OptDatabasePort(15432),
			get: func(c *config.Config) any { return c.Database.Port },
			res: 15432,
		},
		{
			msg: "negative port keeps default",
			opt: config.OptDatabasePort(-1),
			get: func(c *config.Config) any { return c.Database.Port },
			res: 5432,
		},
		{
			msg: "ssl mode is lowercased",
			opt: config.OptDatabaseSSLMode("Verify-Full"),
			get: func(c *config.Config) any { return c.Database.SSLMode },
			res: "verify-full",
		},
		{
			msg: "unknown ssl mode keeps default",
			opt: config.OptDatabaseSSLMode("always"),
			get: func(c *config.Config) any { return c.Database.SSLMode },
			res: "disable",
		},
		{
			msg: "log level",
			opt: config.OptLogLevel("WARN"),
			get: func(c *config.Config) any { return c.Log.Level },
			res: "warn",
		},
		{
			msg: "unknown log level keeps default",
			opt: config.OptLogLevel("verbose"),
			get: func(c *config.Config) any { return c.Log.Level },
			res: "info",
		},
	}

	for _, v := range tests {
		cfg := config.New()
		cfg.Update([]config.Option{v.opt})
		assert.Equal(t, v.res, v.get(cfg), v.msg)
	}
}

func TestOptionSourceFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets json",
			input:    "json",
			expected: "json",
		},
		{
			name:     "sets yaml",
			input:    "YAML",
			expected: "yaml",
		},
		{
			name:     "accepts yml alias",
			input:    "yml",
			expected: "yaml",
		},
		{
			name:     "ignores unknown format",
			input:    "xml",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptSourceFormat(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Source.Format)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets stdout",
			input:    "stdout",
			expected: "stdout",
		},
		{
			name:     "sets stderr",
			input:    "stderr",
			expected: "stderr",
		},
		{
			name:     "ignores invalid value",
			input:    "syslog",
			expected: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogDestination(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Destination)
		})
	}
}

func TestOptionBatchSize(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptDatabaseBatchSize(250)})
	assert.Equal(t, 250, cfg.Database.BatchSize)

	cfg.Update([]config.Option{config.OptDatabaseBatchSize(0)})
	assert.Equal(t, 250, cfg.Database.BatchSize, "zero is ignored")
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptDatabaseHost("custom.host.com"),
			config.OptDatabasePort(6543),
			config.OptDatabaseUser("myuser"),
			config.OptLogLevel("debug"),
			config.OptJobsNumber(16),
		}

		cfg.Update(opts)

		assert.Equal(t, "custom.host.com", cfg.Database.Host)
		assert.Equal(t, 6543, cfg.Database.Port)
		assert.Equal(t, "myuser", cfg.Database.User)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 16, cfg.JobsNumber)

		// Unchanged fields keep defaults
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptDatabaseHost("first.host.com"),
			config.OptDatabaseHost("second.host.com"),
		}

		cfg.Update(opts)

		assert.Equal(t, "second.host.com", cfg.Database.Host)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		opts := []config.Option{
			config.OptDatabaseDriver("sqlite"),
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePort(6543),
			config.OptDatabaseUser("testuser"),
			config.OptDatabasePassword("testpass"),
			config.OptDatabaseDatabase("testdb"),
			config.OptDatabaseSSLMode("require"),
			config.OptDatabaseSQLitePath("/tmp/weapons.db"),
			config.OptDatabaseBatchSize(500),
			config.OptDatabaseMaxConns(4),
			config.OptSourceLocation("s3://bucket/weapons.json"),
			config.OptSourceFormat("json"),
			config.OptS3Region("eu-west-1"),
			config.OptS3Endpoint("http://localhost:9000"),
			config.OptS3PathStyle(true),
			config.OptMetricsFile("/tmp/wsdb.prom"),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
		}
		original.Update(opts)

		convertedOpts := original.ToOptions()
		newCfg := config.New()
		newCfg.Update(convertedOpts)

		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Source, newCfg.Source)
		assert.Equal(t, original.S3, newCfg.S3)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.MetricsFile, newCfg.MetricsFile)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptWithProgress(false),
		})

		opts := cfg.ToOptions()
		newCfg := config.New()
		newCfg.Update(opts)

		assert.Equal(t, "", newCfg.HomeDir)
		assert.True(t, newCfg.WithProgress)
	})
}
