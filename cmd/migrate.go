package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getMigrateCmd returns the migrate command.
func getMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring an existing schema up to date",
		Long: `Migrate adds tables and columns that are missing from an
existing PostgreSQL database. Loaded rows are kept, nothing is dropped.

Migration is done by GORM AutoMigrate over the weapon models.
SQLite files cannot be migrated, recreate them with 'wsdb reset'.

Examples:
  wsdb migrate
  wsdb migrate --driver postgres`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runMigrate(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return migrateCmd
}

func runMigrate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	m, err := openManager(ctx)
	if err != nil {
		return err
	}
	defer m.Close()

	hasSchema, err := m.HasSchema(ctx)
	if err != nil {
		return err
	}
	if !hasSchema {
		gn.Warn("Database has no tables, run <em>wsdb create</em> first")
		return nil
	}

	gn.Info("Migrating weapon schema...")
	if err = m.MigrateSchema(ctx); err != nil {
		return err
	}
	gn.Info("Schema is up to date.")

	return nil
}
