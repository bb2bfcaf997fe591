package iooptimize

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/weaponstats/wsdb/pkg/errcode"
)

// VacuumError is returned when a maintenance statement fails.
func VacuumError(stmt string, err error) error {
	msg := `Cannot run <em>%s</em>

<em>Possible causes:</em>
  - Another process holds a lock on the database
  - Not enough disk space for the rewritten database file

<em>How to fix:</em>
  - Close other connections and run <em>wsdb optimize</em> again`

	return &gn.Error{
		Code: errcode.OptimizeVacuumError,
		Msg:  msg,
		Vars: []any{stmt},
		Err:  fmt.Errorf("maintenance %q: %w", stmt, err),
	}
}
