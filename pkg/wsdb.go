// Package wsdb keeps version information of the WSdb application.
package wsdb

var (
	// Version of WSdb, set during build with ldflags.
	Version = "v0.1.0"

	// Build timestamp, set during build with ldflags.
	Build = "n/a"
)
