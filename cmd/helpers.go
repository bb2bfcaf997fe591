package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gn"
	"github.com/weaponstats/wsdb/internal/iomanager"
	"github.com/weaponstats/wsdb/pkg/config"
)

// openManager connects to the configured database and checks that it
// answers queries.
func openManager(ctx context.Context) (*iomanager.Manager, error) {
	m, err := iomanager.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err = m.TestConnection(ctx); err != nil {
		m.Close()
		return nil, err
	}

	gn.Info("Connected to database: <em>%s</em>", dbLabel(&cfg.Database))
	return m, nil
}

// dbLabel describes the database for console messages. The password
// is never shown.
func dbLabel(cfg *config.DatabaseConfig) string {
	if cfg.Driver == config.DriverSQLite {
		return "sqlite:" + cfg.SQLitePath
	}
	return fmt.Sprintf("%s@%s:%d/%s",
		cfg.User, cfg.Host, cfg.Port, cfg.Database)
}

// confirm asks a yes/no question and reads the answer from in.
func confirm(in io.Reader, question string) (bool, error) {
	fmt.Printf("\n%s (yes/no): ", question)

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y", nil
}
