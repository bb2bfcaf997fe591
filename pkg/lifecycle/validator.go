package lifecycle

import (
	"context"
)

// Validator checks the content of the database after a load.
// Validation never changes data.
type Validator interface {
	Validate(ctx context.Context) (*Report, error)
}

// Report is the result of a validation.
type Report struct {
	// IsValid is true when no issues were found.
	IsValid bool `json:"is_valid"`

	// Issues are human-readable problems: empty tables first, in the order
	// of tables, then orphaned rows.
	Issues []string `json:"issues"`

	// TableCounts is the number of rows per table.
	TableCounts map[string]int64 `json:"table_counts"`
}
