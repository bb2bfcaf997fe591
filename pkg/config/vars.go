package config

import (
	"path/filepath"
)

const (
	// DriverPostgres selects the PostgreSQL store backend.
	DriverPostgres = "postgres"
	// DriverSQLite selects the SQLite store backend.
	DriverSQLite = "sqlite"
)

var (
	// AppName is used in generating file system paths.
	AppName = "wsdb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/wsdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/wsdb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/wsdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/wsdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
