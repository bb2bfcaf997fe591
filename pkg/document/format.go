package document

import (
	"path/filepath"
	"strings"
)

// Format of a serialized document.
type Format int

const (
	UnknownFormat Format = iota
	JSON
	YAML
)

// NewFormat converts a format name to Format. Empty string means JSON.
func NewFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return JSON
	case "yaml", "yml":
		return YAML
	default:
		return UnknownFormat
	}
}

// FormatFromPath guesses the format from a file extension. Anything but
// .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}
