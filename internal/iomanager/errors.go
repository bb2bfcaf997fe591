package iomanager

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/weaponstats/wsdb/pkg/errcode"
)

// EmptyDatabaseError is returned when data is loaded into a database
// without a schema.
func EmptyDatabaseError() error {
	msg := `<err>Database appears to be empty.</err>
   Run <em>'wsdb create'</em> first to initialize the schema.`

	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg:  msg,
		Err:  errors.New("cannot insert data into empty database"),
	}
}

// ConnectionTestError is returned when a connected store does not
// answer a trivial query.
func ConnectionTestError(dialect string, err error) error {
	msg := `Connection test failed for <em>%s</em> database

<em>Possible causes:</em>
  - Database server went down
  - Network connection was interrupted`

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{dialect},
		Err:  fmt.Errorf("connection test %s: %w", dialect, err),
	}
}
