package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	wsdb "github.com/weaponstats/wsdb/pkg"
	"github.com/weaponstats/wsdb/pkg/config"
)

// funcFlag reads a flag and adds an option to opts when the flag was
// set by the user.
type funcFlag func(cmd *cobra.Command)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", wsdb.Version, wsdb.Build)
		os.Exit(0)
	}
}

func driverFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("driver") {
		return
	}
	s, _ := cmd.Flags().GetString("driver")
	opts = append(opts, config.OptDatabaseDriver(s))
}

func sqlitePathFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("sqlite-path") {
		return
	}
	s, _ := cmd.Flags().GetString("sqlite-path")
	opts = append(opts, config.OptDatabaseSQLitePath(s))
}

func sourceFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("source") {
		return
	}
	s, _ := cmd.Flags().GetString("source")
	opts = append(opts, config.OptSourceLocation(s))
}

func formatFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("format") {
		return
	}
	s, _ := cmd.Flags().GetString("format")
	opts = append(opts, config.OptSourceFormat(s))
}

func progressFlag(cmd *cobra.Command) {
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	opts = append(opts, config.OptWithProgress(!noProgress))
}
