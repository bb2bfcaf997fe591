package lifecycle

import (
	"context"
	"time"

	"github.com/weaponstats/wsdb/pkg/document"
	"github.com/weaponstats/wsdb/pkg/normalize"
)

// Loader writes normalized rows to the database. Either all rows are
// committed or none of them.
type Loader interface {
	Load(ctx context.Context, rows *normalize.Rows) (*LoadStats, error)
}

// Populator imports weapons documents into the database.
type Populator interface {
	// Populate normalizes and loads an already parsed document.
	Populate(ctx context.Context, doc *document.Document) (*LoadStats, error)

	// PopulateFrom fetches and parses a document from a local path, an
	// http(s) URL or an s3:// location, then populates it.
	// Empty location means the built-in sample document.
	PopulateFrom(ctx context.Context, location string) (*LoadStats, error)
}

// LoadStats summarizes one load.
type LoadStats struct {
	// Inserted is the number of new rows per table.
	Inserted map[string]int64

	// Ignored is the number of rows per table that collided with
	// existing rows and were left out.
	Ignored map[string]int64

	// SkippedStats and SkippedAmmoStats count source entries with
	// references that could not be resolved.
	SkippedStats     int
	SkippedAmmoStats int

	Duration time.Duration
}

// NewLoadStats creates LoadStats with empty per-table maps.
func NewLoadStats() *LoadStats {
	return &LoadStats{
		Inserted: make(map[string]int64),
		Ignored:  make(map[string]int64),
	}
}

// TotalInserted returns the number of new rows in all tables.
func (s *LoadStats) TotalInserted() int64 {
	var res int64
	for _, v := range s.Inserted {
		res += v
	}
	return res
}

// TotalIgnored returns the number of ignored rows in all tables.
func (s *LoadStats) TotalIgnored() int64 {
	var res int64
	for _, v := range s.Ignored {
		res += v
	}
	return res
}
