package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getPopulateCmd returns the populate command.
func getPopulateCmd() *cobra.Command {
	populateCmd := &cobra.Command{
		Use:   "populate",
		Short: "Populate database with a weapons document",
		Long: `Load a weapons document into the database.

This command:
  1. Connects to the database using configuration settings
  2. Reads the document from a file, an http(s) URL or S3
  3. Normalizes categories, weapons, barrels and ammo types,
     assigning stable ids
  4. Inserts all rows in one transaction

Rows that already exist are left untouched, so loading the same
document twice changes nothing. If any insert fails, nothing is saved.

Without --source the location from config.yaml is used. If it is
empty too, the built-in sample document is loaded.

Examples:
  wsdb populate
  wsdb populate --source weapons.json
  wsdb populate -s https://example.com/weapons.yaml
  wsdb populate -s s3://game-data/weapons.json
  wsdb populate -s weapons.txt --format yaml`,
		Aliases: []string{"add"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPopulate(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	populateCmd.Flags().StringP("source", "s", "",
		"document location: path, http(s) URL or s3://bucket/key")
	populateCmd.Flags().StringP("format", "F", "",
		"document format: json or yaml (default: from extension)")
	populateCmd.Flags().Bool("no-progress", false,
		"do not show the progress bar")

	return populateCmd
}

func runPopulate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	opts = nil
	for _, v := range []funcFlag{sourceFlag, formatFlag, progressFlag} {
		v(cmd)
	}
	cfg.Update(opts)

	m, err := openManager(ctx)
	if err != nil {
		return err
	}
	defer m.Close()

	if _, err = m.PopulateFrom(ctx, cfg.Source.Location); err != nil {
		return err
	}

	gn.Info(`Next steps:
  - Run '<em>wsdb validate</em>' to check the data`)

	return nil
}
