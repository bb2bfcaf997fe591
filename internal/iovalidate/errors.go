package iovalidate

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/weaponstats/wsdb/pkg/errcode"
)

// ValidateCountError creates an error for a failed row count.
func ValidateCountError(table string, err error) error {
	msg := `Cannot count rows of table <em>%s</em>

<em>Possible causes:</em>
  - Database schema is not created
  - Connection to the database was lost

<em>How to fix:</em>
  - Run <em>wsdb create</em> to create the schema`

	return &gn.Error{
		Code: errcode.ValidateCountError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("count %s: %w", table, err),
	}
}

// ValidateIntegrityError creates an error for a failed reference check.
func ValidateIntegrityError(table string, err error) error {
	msg := "Cannot check references of table <em>%s</em>"

	return &gn.Error{
		Code: errcode.ValidateIntegrityError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("integrity check %s: %w", table, err),
	}
}

// InvalidDataError is returned when validation finds issues, so the
// command exits with a non-zero status.
func InvalidDataError(issues int) error {
	msg := `Validation found <em>%d</em> issue(s)

<em>How to fix:</em>
  - Populate empty tables with <em>wsdb populate</em>
  - Start over with <em>wsdb reset</em> followed by <em>wsdb populate</em>`

	return &gn.Error{
		Code: errcode.ValidateInvalidDataError,
		Msg:  msg,
		Vars: []any{issues},
		Err:  fmt.Errorf("validation found %d issues", issues),
	}
}
