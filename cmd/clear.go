package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getClearCmd returns the clear command.
func getClearCmd() *cobra.Command {
	var force bool

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all data, keep the schema",
		Long: `Delete rows of all tables in one transaction.

Tables, indexes and key sequences stay in place, so the database can be
populated again right away.

Use --force to skip confirmation.

Examples:
  wsdb clear
  wsdb clear --force
  wsdb clear -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runClear(cmd, force)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	clearCmd.Flags().BoolVarP(&force, "force", "f",
		false, "delete data without confirmation")

	return clearCmd
}

func runClear(cmd *cobra.Command, force bool) error {
	ctx := context.Background()

	m, err := openManager(ctx)
	if err != nil {
		return err
	}
	defer m.Close()

	if !force {
		gn.Warn("All weapon data will be deleted.")
		ok, err := confirm(cmd.InOrStdin(), "Do you want to continue?")
		if err != nil {
			return err
		}
		if !ok {
			gn.Info("Aborted. No changes made.")
			return nil
		}
	}

	if err = m.ClearData(ctx); err != nil {
		return err
	}
	gn.Info("All data deleted.")

	return nil
}
