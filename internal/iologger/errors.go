package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/weaponstats/wsdb/pkg/errcode"
)

// CreateLogFileError means wsdb.log could not be opened for writing.
func CreateLogFileError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  "Log output cannot go to <em>%s</em>, set log.destination to stderr",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: open log %s: %w", fn.Name(), path, err),
	}
}
