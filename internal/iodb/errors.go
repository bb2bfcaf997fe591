package iodb

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/errcode"
)

// ConnectionError creates an error for PostgreSQL connection failures.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL database <em>%s</em>

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>
  2. Verify database exists:
     <em>psql -h %s -U %s -l</em>
  3. Check your configuration file:
     <em>~/.config/wsdb/config.yaml</em>`

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{database, host, port, host, user},
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// SQLiteConnectionError creates an error for SQLite files that
// cannot be opened.
func SQLiteConnectionError(path string, err error) error {
	msg := `Cannot open SQLite database <em>%s</em>

<em>How to fix:</em>
  1. Make sure the directory of the file exists and is writable
  2. Set another path with <em>--sqlite-path</em> or
     <em>WSDB_DATABASE_SQLITE_PATH</em>`

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("failed to open sqlite %s: %w", path, err),
	}
}

// UnknownDriverError creates an error for unsupported drivers.
func UnknownDriverError(driver string) error {
	msg := "Unknown database driver <em>%s</em>, use <em>%s</em>"
	drivers := strings.Join(
		[]string{config.DriverPostgres, config.DriverSQLite}, "</em> or <em>",
	)

	return &gn.Error{
		Code: errcode.DBUnknownDriverError,
		Msg:  msg,
		Vars: []any{driver, drivers},
		Err:  fmt.Errorf("unknown driver %q", driver),
	}
}

// NotConnectedError creates an error for operations attempted
// before Connect.
func NotConnectedError() error {
	msg := "Database operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError creates an error for failures when checking for
// tables in the database.
func TableCheckError(err error) error {
	msg := "Cannot check database tables"

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to check tables: %w", err),
	}
}

// TableExistsCheckError creates an error for failures when checking
// if a particular table exists.
func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"

	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}

func ExecError(query string, err error) error {
	msg := "Database statement failed: <em>%s</em>"
	stmt := firstLine(query)

	return &gn.Error{
		Code: errcode.DBExecError,
		Msg:  msg,
		Vars: []any{stmt},
		Err:  fmt.Errorf("exec %q: %w", stmt, err),
	}
}

func CountError(query string, err error) error {
	msg := "Database query failed: <em>%s</em>"
	stmt := firstLine(query)

	return &gn.Error{
		Code: errcode.DBCountError,
		Msg:  msg,
		Vars: []any{stmt},
		Err:  fmt.Errorf("query %q: %w", stmt, err),
	}
}

func BeginTxError(err error) error {
	return &gn.Error{
		Code: errcode.DBBeginTxError,
		Msg:  "Cannot start database transaction",
		Err:  fmt.Errorf("begin transaction: %w", err),
	}
}

func CommitTxError(err error) error {
	return &gn.Error{
		Code: errcode.DBCommitTxError,
		Msg:  "Cannot commit database transaction",
		Err:  fmt.Errorf("commit transaction: %w", err),
	}
}

// firstLine shortens multi-row statements for messages.
func firstLine(query string) string {
	q := strings.TrimSpace(query)
	if i := strings.IndexByte(q, '\n'); i > 0 {
		q = q[:i]
	}
	if len(q) > 80 {
		q = q[:77] + "..."
	}
	return q
}
