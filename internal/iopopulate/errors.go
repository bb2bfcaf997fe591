package iopopulate

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/weaponstats/wsdb/pkg/errcode"
)

// LoadTableError creates an error for a failed insert. Nothing from the
// load is saved.
func LoadTableError(table string, err error) error {
	msg := `Cannot load rows into table <em>%s</em>, all changes were rolled back

<em>Possible causes:</em>
  - Duplicate names with different data in the document
  - Schema is outdated, try <em>wsdb migrate</em> or <em>wsdb reset</em>
  - Connection to the database was lost`

	return &gn.Error{
		Code: errcode.PopulateLoadTableError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("load %s: %w", table, err),
	}
}

// CancelledError creates an error for when populate
// operation is cancelled.
func CancelledError(err error) error {
	msg := "Populate operation was cancelled, all changes were rolled back"

	return &gn.Error{
		Code: errcode.PopulateCancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("populate cancelled: %w", err),
	}
}
