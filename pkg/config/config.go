// Package config provides configuration management for WSdb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, host, port, user, password, database, ssl_mode,
//     sqlite_path, batch_size, max_conns
//   - Log: level, format, destination
//   - Source: location, format
//   - S3: region, endpoint, path_style
//   - General: metrics_file, jobs_number
//
// Runtime-only fields (CLI flags only):
//   - WithProgress (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use WSDB_ prefix with underscores for nesting:
//
//	WSDB_DATABASE_DRIVER=postgres
//	WSDB_DATABASE_HOST=localhost
//	WSDB_LOG_LEVEL=info
//	WSDB_SOURCE_LOCATION=s3://bucket/weapons.json
package config

import (
	"runtime"
)

// Config represents the complete WSdb configuration.
type Config struct {
	// Database contains connection settings of the relational store.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Source describes where the weapons document comes from.
	Source SourceConfig `mapstructure:"source" yaml:"source"`

	// S3 contains settings for s3:// document locations.
	S3 S3Config `mapstructure:"s3" yaml:"s3"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// MetricsFile is a path where Prometheus metrics are written in the
	// text exposition format after populate and validate. Empty disables
	// the export.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`

	// JobsNumber limits the number of concurrent read queries.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// WithProgress shows a progress bar while rows are inserted.
	WithProgress bool

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains connection parameters of the store.
type DatabaseConfig struct {
	// Driver selects the store backend: "postgres" or "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// SQLitePath is the database file used by the "sqlite" driver.
	// ":memory:" opens a private in-memory database.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`

	// BatchSize is the maximum number of rows sent in one INSERT statement.
	// The loader lowers it further for wide tables to stay under the
	// bind-parameter limit of the store.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`

	// MaxConns is the size of the PostgreSQL connection pool.
	MaxConns int `mapstructure:"max_conns" yaml:"max_conns"`
}

// SourceConfig describes the weapons document to import.
type SourceConfig struct {
	// Location is a local path, an http(s) URL or an s3://bucket/key URI.
	Location string `mapstructure:"location" yaml:"location"`

	// Format is "json" or "yaml". Empty means detect from the location
	// extension, falling back to JSON.
	Format string `mapstructure:"format" yaml:"format"`
}

// S3Config contains settings for reading documents from S3 compatible
// storage.
type S3Config struct {
	// Region of the bucket. Default is us-east-1.
	Region string `mapstructure:"region" yaml:"region"`

	// Endpoint overrides the AWS endpoint (for example MinIO).
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// PathStyle enables path-style bucket addressing.
	PathStyle bool `mapstructure:"path_style" yaml:"path_style"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:     DriverPostgres,
			Host:       "localhost",
			Port:       5432,
			User:       "postgres",
			Password:   "postgres",
			Database:   "weapons",
			SSLMode:    "disable",
			SQLitePath: "wsdb.sqlite",
			BatchSize:  1_000,
			MaxConns:   10,
		},
		S3: S3Config{
			Region: "us-east-1",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber:   runtime.NumCPU(),
		WithProgress: true,
	}

	return res
}
