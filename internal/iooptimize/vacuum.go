package iooptimize

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/weaponstats/wsdb/pkg/db"
)

// maintenanceSQL returns statements that reclaim storage and update
// statistics. None of them can run inside a transaction.
func maintenanceSQL(d db.Dialect) []string {
	if d == db.SQLite {
		return []string{"VACUUM", "ANALYZE"}
	}
	return []string{"VACUUM ANALYZE"}
}

func vacuumAnalyze(ctx context.Context, o *optimizer) error {
	timeStart := time.Now()

	for _, v := range maintenanceSQL(o.operator.Dialect()) {
		slog.Info("Running maintenance", "statement", v)
		if _, err := o.operator.Exec(ctx, v); err != nil {
			slog.Error("Maintenance failed", "statement", v, "error", err)
			return VacuumError(v, err)
		}
	}

	slog.Info("Maintenance completed",
		"duration", gnfmt.TimeString(time.Since(timeStart).Seconds()),
	)
	return nil
}
