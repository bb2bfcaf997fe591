package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/weaponstats/wsdb/pkg/errcode"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot connect to database with GORM

<em>Possible causes:</em>
  - Connection pool not initialized
  - Database configuration issue

<em>How to fix:</em>
  1. Ensure database operator is connected
  2. Check database configuration`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// CreateTableError creates an error for a table that
// could not be created.
func CreateTableError(table string, err error) error {
	msg := `Cannot create table <em>%s</em>

<em>How to fix:</em>
  1. Check database permissions
  2. Try <em>wsdb reset</em> to rebuild the schema`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to create table %s: %w", table, err),
	}
}

// IndexError creates an error for index creation failures.
func IndexError(table string, err error) error {
	msg := "Cannot create indexes for table <em>%s</em>"

	return &gn.Error{
		Code: errcode.SchemaIndexError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to create index on %s: %w", table, err),
	}
}

func DropTableError(table string, err error) error {
	msg := "Cannot drop table <em>%s</em>"

	return &gn.Error{
		Code: errcode.SchemaDropError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to drop table %s: %w", table, err),
	}
}

func DropSequenceError(seq string, err error) error {
	msg := "Cannot drop sequence <em>%s</em>"

	return &gn.Error{
		Code: errcode.SchemaDropError,
		Msg:  msg,
		Vars: []any{seq},
		Err:  fmt.Errorf("failed to drop sequence %s: %w", seq, err),
	}
}

func ClearTableError(table string, err error) error {
	msg := "Cannot delete data from table <em>%s</em>, nothing was deleted"

	return &gn.Error{
		Code: errcode.SchemaClearError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to clear %s: %w", table, err),
	}
}

// MigrateSchemaError creates an error for schema
// migration failures.
func MigrateSchemaError(err error) error {
	msg := `Cannot migrate database schema

<em>Possible causes:</em>
  - Schema conflicts with existing tables
  - Insufficient database permissions

<em>How to fix:</em>
  1. Check database permissions
  2. Review existing schema
  3. Consider <em>wsdb reset</em> for a fresh start`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}

// MigrateUnsupportedError is returned when migration is requested for a
// database that GORM is not wired to.
func MigrateUnsupportedError(dialect string) error {
	msg := `Schema migration is not supported for <em>%s</em>

<em>How to fix:</em>
  Use <em>wsdb reset</em> to recreate the schema`

	return &gn.Error{
		Code: errcode.SchemaMigrateUnsupportedError,
		Msg:  msg,
		Vars: []any{dialect},
		Err:  fmt.Errorf("migrate is not supported for %s", dialect),
	}
}
