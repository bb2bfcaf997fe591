// Package iooptimize implements the Optimizer interface. After a load
// it reclaims storage and refreshes statistics of the query planner.
package iooptimize

import (
	"context"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/weaponstats/wsdb/pkg/db"
	"github.com/weaponstats/wsdb/pkg/lifecycle"
)

// optimizer implements the Optimizer interface.
type optimizer struct {
	operator db.Operator
}

// NewOptimizer creates a new Optimizer.
func NewOptimizer(op db.Operator) lifecycle.Optimizer {
	return &optimizer{
		operator: op,
	}
}

// Optimize runs maintenance statements of the dialect. Errors are
// returned to the CLI layer for display via gn.PrintErrorMessage().
func (o *optimizer) Optimize(ctx context.Context) error {
	slog.Info("Starting database optimization")
	gn.Info("Optimization in progress, <em>it might take a while</em>...")

	if err := vacuumAnalyze(ctx, o); err != nil {
		return err
	}

	slog.Info("Database optimization complete")
	return nil
}
