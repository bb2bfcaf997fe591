package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
	"github.com/weaponstats/wsdb/internal/iovalidate"
	"github.com/weaponstats/wsdb/pkg/lifecycle"
	"github.com/weaponstats/wsdb/pkg/schema"
)

// getValidateCmd returns the validate command.
func getValidateCmd() *cobra.Command {
	var asJSON bool

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check row counts and references",
		Long: `Validate counts rows of every table and looks for rows that refer
to missing categories, weapons, barrels, ammo types or configurations.
Empty tables are reported as issues.

The command exits with a non-zero status if any issue is found.
Data is never changed.

Examples:
  wsdb validate
  wsdb validate --json
  wsdb validate -j`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runValidate(cmd, asJSON)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	validateCmd.Flags().BoolVarP(&asJSON, "json", "j",
		false, "print the report as JSON")

	return validateCmd
}

func runValidate(cmd *cobra.Command, asJSON bool) error {
	ctx := context.Background()

	m, err := openManager(ctx)
	if err != nil {
		return err
	}
	defer m.Close()

	report, err := m.ValidateData(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		err = writeReportJSON(cmd.OutOrStdout(), report)
	} else {
		writeReport(cmd.OutOrStdout(), report)
	}
	if err != nil {
		return err
	}

	if !report.IsValid {
		return iovalidate.InvalidDataError(len(report.Issues))
	}
	gn.Info("Database is valid.")
	return nil
}

func writeReportJSON(w io.Writer, report *lifecycle.Report) error {
	enc := gnfmt.GNjson{Pretty: true}
	res, err := enc.Encode(report)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(res))
	return err
}

// writeReport prints counts in the order of tables, then issues.
func writeReport(w io.Writer, report *lifecycle.Report) {
	fmt.Fprintln(w, "Table counts:")
	for _, v := range schema.TableNames() {
		fmt.Fprintf(w, "  %-18s %10s\n", v, humanize.Comma(report.TableCounts[v]))
	}

	if len(report.Issues) == 0 {
		return
	}
	fmt.Fprintln(w, "\nIssues:")
	for _, v := range report.Issues {
		fmt.Fprintf(w, "  - %s\n", v)
	}
}
