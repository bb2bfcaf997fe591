// Package cmd implements the wsdb command line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/weaponstats/wsdb/internal/iofs"
	"github.com/weaponstats/wsdb/internal/iologger"
	wsdb "github.com/weaponstats/wsdb/pkg"
	"github.com/weaponstats/wsdb/pkg/config"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", wsdb.Version, wsdb.Build),
		Use:     "wsdb",
		Short:   "WSdb loads weapon statistics into a relational database",
		Long: `WSdb reads a nested weapons document (categories, weapons, barrel
and ammo stats, damage dropoffs) and stores it in a normalized PostgreSQL
or SQLite database.

Commands follow the database lifecycle:
  - create: create tables and indexes
  - populate: load a weapons document
  - validate: check row counts and references
  - clear: delete all rows, keep the schema
  - reset: drop and recreate the schema
  - optimize: reclaim space and refresh statistics
  - migrate: update the schema of an existing PostgreSQL database

Configuration precedence (highest to lowest):
  1. CLI flags (--driver, --sqlite-path, command flags)
  2. Environment variables (WSDB_*)
  3. Config file (~/.config/wsdb/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (database.host → WSDB_DATABASE_HOST).

  Examples:
    WSDB_DATABASE_DRIVER            postgres or sqlite
    WSDB_DATABASE_HOST              PostgreSQL host
    WSDB_DATABASE_SQLITE_PATH       SQLite database file
    WSDB_SOURCE_LOCATION            path, URL or s3://bucket/key
    WSDB_LOG_LEVEL                  debug, info, warn or error`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "wsdb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for wsdb")

	rootCmd.PersistentFlags().StringP("driver", "D", "",
		"database driver: postgres or sqlite")
	rootCmd.PersistentFlags().String("sqlite-path", "",
		"database file for the sqlite driver")

	rootCmd.AddCommand(
		getCreateCmd(),
		getPopulateCmd(),
		getValidateCmd(),
		getClearCmd(),
		getResetCmd(),
		getMigrateCmd(),
		getOptimizeCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	opts = append(opts, config.OptHomeDir(homeDir))
	for _, v := range []funcFlag{driverFlag, sqlitePathFlag} {
		v(cmd)
	}
	cfg.Update(opts)

	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"driver", cfg.Database.Driver,
	)
	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Environment variables are bound one by one, so it is clear which of
	// them are allowed. They match fields of config.ToOptions().
	v.SetEnvPrefix("WSDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.driver", "WSDB_DATABASE_DRIVER")
	v.BindEnv("database.host", "WSDB_DATABASE_HOST")
	v.BindEnv("database.port", "WSDB_DATABASE_PORT")
	v.BindEnv("database.user", "WSDB_DATABASE_USER")
	v.BindEnv("database.password", "WSDB_DATABASE_PASSWORD")
	v.BindEnv("database.database", "WSDB_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "WSDB_DATABASE_SSL_MODE")
	v.BindEnv("database.sqlite_path", "WSDB_DATABASE_SQLITE_PATH")
	v.BindEnv("database.batch_size", "WSDB_DATABASE_BATCH_SIZE")
	v.BindEnv("database.max_conns", "WSDB_DATABASE_MAX_CONNS")

	// Document source
	v.BindEnv("source.location", "WSDB_SOURCE_LOCATION")
	v.BindEnv("source.format", "WSDB_SOURCE_FORMAT")
	v.BindEnv("s3.region", "WSDB_S3_REGION")
	v.BindEnv("s3.endpoint", "WSDB_S3_ENDPOINT")
	v.BindEnv("s3.path_style", "WSDB_S3_PATH_STYLE")

	// Log configuration
	v.BindEnv("log.level", "WSDB_LOG_LEVEL")
	v.BindEnv("log.format", "WSDB_LOG_FORMAT")
	v.BindEnv("log.destination", "WSDB_LOG_DESTINATION")

	// General configuration
	v.BindEnv("metrics_file", "WSDB_METRICS_FILE")
	v.BindEnv("jobs_number", "WSDB_JOBS_NUMBER")

	v.AutomaticEnv()
}
