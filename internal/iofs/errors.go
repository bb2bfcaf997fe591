package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/weaponstats/wsdb/pkg/errcode"
)

// CreateDirError is returned when one of the wsdb directories (config,
// cache, logs) cannot be made.
func CreateDirError(dir string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  "Directory <em>%s</em> is not available for wsdb",
		Vars: []any{dir},
		Err:  fmt.Errorf("from %s: mkdir %s: %w", fn.Name(), dir, err),
	}
}

// WriteConfigError is returned when the default config.yaml cannot be
// written on the first run.
func WriteConfigError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteConfigError,
		Msg:  "Default wsdb settings were not saved to <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: write default config %s: %w", fn.Name(), path, err),
	}
}

// ReadFileError is returned when an existing config.yaml is unreadable
// or is not valid YAML.
func ReadFileError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  "Settings in <em>%s</em> cannot be loaded",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: read config %s: %w", fn.Name(), path, err),
	}
}
