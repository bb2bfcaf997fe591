package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
func getCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create database schema",
		Long: `Create tables and indexes of the weapons database.

This command:
  1. Connects to the database using configuration settings
  2. Creates categories, weapons, barrels, ammo_types,
     weapon_ammo_stats, configurations and config_dropoffs tables
  3. Creates indexes on foreign keys and ranges

Existing tables are kept, so it is safe to run the command again.
Use 'wsdb reset' to start from an empty schema.

Examples:
  wsdb create
  wsdb create --driver sqlite --sqlite-path weapons.sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCreate(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return createCmd
}

func runCreate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	m, err := openManager(ctx)
	if err != nil {
		return err
	}
	defer m.Close()

	gn.Info("Creating schema...")
	if err = m.CreateSchema(ctx); err != nil {
		return err
	}

	gn.Info(`Database schema is ready.
Next steps:
  - Run '<em>wsdb populate</em>' to load a weapons document
  - Run '<em>wsdb validate</em>' to check the data`)

	return nil
}
