package lifecycle

import "context"

// Optimizer runs maintenance of the database after it was populated.
type Optimizer interface {
	// Optimize reclaims storage and refreshes statistics used by the
	// query planner. Data is not changed.
	Optimize(ctx context.Context) error
}
