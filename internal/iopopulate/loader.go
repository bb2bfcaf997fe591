package iopopulate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/db"
	"github.com/weaponstats/wsdb/pkg/lifecycle"
	"github.com/weaponstats/wsdb/pkg/normalize"
	"github.com/weaponstats/wsdb/pkg/schema"
)

// maxParams keeps every statement well below the bind parameter limits
// of PostgreSQL (65535) and SQLite (32766).
const maxParams = 30_000

// loader implements the lifecycle.Loader interface.
type loader struct {
	operator     db.Operator
	batchSize    int
	withProgress bool
}

// NewLoader creates a new Loader.
func NewLoader(cfg *config.Config, op db.Operator) lifecycle.Loader {
	return &loader{
		operator:     op,
		batchSize:    cfg.Database.BatchSize,
		withProgress: cfg.WithProgress,
	}
}

// tableRows keeps rows of one table together with an empty model that
// describes the table.
type tableRows struct {
	model schema.Table
	rows  []schema.Table
}

// loadOrder returns rows in the order of insertion, parents before
// children.
func loadOrder(r *normalize.Rows) []tableRows {
	return []tableRows{
		{schema.Category{}, asTables(r.Categories)},
		{schema.Barrel{}, asTables(r.Barrels)},
		{schema.AmmoType{}, asTables(r.AmmoTypes)},
		{schema.Weapon{}, asTables(r.Weapons)},
		{schema.WeaponAmmoStat{}, asTables(r.WeaponAmmoStats)},
		{schema.Configuration{}, asTables(r.Configurations)},
		{schema.ConfigDropoff{}, asTables(r.ConfigDropoffs)},
	}
}

func asTables[T schema.Table](rows []T) []schema.Table {
	res := make([]schema.Table, len(rows))
	for i := range rows {
		res[i] = rows[i]
	}
	return res
}

// Load inserts all rows in a single transaction. Rows that collide with
// existing rows on their natural key are ignored. On any error the
// transaction is rolled back and the database stays unchanged.
func (l *loader) Load(
	ctx context.Context,
	rows *normalize.Rows,
) (*lifecycle.LoadStats, error) {
	start := time.Now()
	stats := lifecycle.NewLoadStats()
	stats.SkippedStats = rows.SkippedStats
	stats.SkippedAmmoStats = rows.SkippedAmmoStats

	tx, err := l.operator.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var bar *pb.ProgressBar
	if l.withProgress {
		bar = pb.Full.Start(rows.Total())
		bar.Set("prefix", "Loading rows: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	for _, v := range loadOrder(rows) {
		name := v.model.TableName()
		select {
		case <-ctx.Done():
			return nil, CancelledError(ctx.Err())
		default:
		}

		inserted, err := l.insertRows(ctx, tx, v.model, v.rows, bar)
		if err != nil {
			slog.Error("Load failed, rolling back",
				"table", name,
				"error", err,
			)
			return nil, LoadTableError(name, err)
		}

		stats.Inserted[name] = inserted
		stats.Ignored[name] = int64(len(v.rows)) - inserted
		slog.Debug("Table loaded",
			"table", name,
			"rows", len(v.rows),
			"inserted", inserted,
		)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// insertRows writes rows in multi-row INSERT statements and returns the
// number of rows that were actually inserted.
func (l *loader) insertRows(
	ctx context.Context,
	tx db.Tx,
	model schema.Table,
	rows []schema.Table,
	bar *pb.ProgressBar,
) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	cols := schema.Columns(model)
	batchSize := batchLimit(l.batchSize, len(cols))
	conflict := l.operator.Dialect().OnConflictDoNothing(model.ConflictKey())

	var total int64
	for i := 0; i < len(rows); i += batchSize {
		end := min(i+batchSize, len(rows))
		batch := rows[i:end]

		valueStrings := make([]string, 0, len(batch))
		valueArgs := make([]any, 0, len(batch)*len(cols))
		argIdx := 1
		for _, row := range batch {
			valueStrings = append(valueStrings, placeholders(argIdx, len(cols)))
			valueArgs = append(valueArgs, row.Values()...)
			argIdx += len(cols)
		}

		query := fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES %s %s",
			model.TableName(),
			strings.Join(cols, ", "),
			strings.Join(valueStrings, ", "),
			conflict,
		)

		n, err := tx.Exec(ctx, query, valueArgs...)
		if err != nil {
			return 0, err
		}
		total += n

		if bar != nil {
			bar.Add(len(batch))
		}
	}
	return total, nil
}

// batchLimit returns how many rows fit into one statement.
func batchLimit(batchSize, colsNum int) int {
	res := maxParams / colsNum
	if batchSize > 0 && batchSize < res {
		res = batchSize
	}
	return res
}

// placeholders returns a row of numbered placeholders, for example
// ($4, $5, $6).
func placeholders(start, n int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i := range n {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "$%d", start+i)
	}
	b.WriteByte(')')
	return b.String()
}
