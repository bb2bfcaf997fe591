package document

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/weaponstats/wsdb/pkg/errcode"
)

// ParseError creates an error for a malformed weapons document.
func ParseError(f Format, err error) error {
	msg := `Cannot parse weapons document as <em>%s</em>

<em>Possible causes:</em>
  - Document is not valid %s
  - Wrong --format for the document
  - Field has a wrong type (e.g. text where a number is expected)`

	return &gn.Error{
		Code: errcode.DocumentParseError,
		Msg:  msg,
		Vars: []any{f.String(), f.String()},
		Err:  fmt.Errorf("parse %s document: %w", f, err),
	}
}
