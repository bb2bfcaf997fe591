package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getResetCmd returns the reset command.
func getResetCmd() *cobra.Command {
	var force bool

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and recreate database schema",
		Long: `Drop all tables with their key sequences and create the schema
again. All data is lost and ids start from 1.

Use --force to skip confirmation.

Examples:
  wsdb reset
  wsdb reset --force
  wsdb reset -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runReset(cmd, force)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	resetCmd.Flags().BoolVarP(&force, "force", "f",
		false, "drop tables without confirmation")

	return resetCmd
}

func runReset(cmd *cobra.Command, force bool) error {
	ctx := context.Background()

	m, err := openManager(ctx)
	if err != nil {
		return err
	}
	defer m.Close()

	if !force {
		gn.Warn(`Resetting will drop ALL tables and data.`)
		ok, err := confirm(cmd.InOrStdin(), "Do you want to continue?")
		if err != nil {
			return err
		}
		if !ok {
			gn.Info("Aborted. No changes made.")
			return nil
		}
	}

	gn.Info("Dropping all tables...")
	if err = m.ResetDatabase(ctx); err != nil {
		return err
	}
	gn.Info("Database schema was recreated.")

	return nil
}
