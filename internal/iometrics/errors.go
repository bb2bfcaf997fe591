package iometrics

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/weaponstats/wsdb/pkg/errcode"
)

// WriteError creates an error for a metrics file that cannot be saved.
func WriteError(path string, err error) error {
	msg := "Cannot write metrics to <em>%s</em>"

	return &gn.Error{
		Code: errcode.MetricsWriteError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("write metrics %s: %w", path, err),
	}
}
