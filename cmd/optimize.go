package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getOptimizeCmd returns the optimize command.
func getOptimizeCmd() *cobra.Command {
	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "Reclaim space and refresh database statistics",
		Long: `Optimize runs maintenance after the database was populated.

PostgreSQL runs VACUUM ANALYZE, SQLite runs VACUUM followed by ANALYZE.
Data is not changed. Run it after large loads or after 'wsdb clear'.

Examples:
  wsdb optimize`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runOptimize(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return optimizeCmd
}

func runOptimize(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	m, err := openManager(ctx)
	if err != nil {
		return err
	}
	defer m.Close()

	if err = m.Optimize(ctx); err != nil {
		return err
	}
	gn.Info("Database optimization complete.")

	return nil
}
