// Package iopopulate implements Populator and Loader interfaces for
// importing weapons documents into the database.
// This is an impure I/O package that fetches documents and performs
// bulk inserts.
package iopopulate

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/weaponstats/wsdb/internal/iometrics"
	"github.com/weaponstats/wsdb/internal/iosource"
	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/db"
	"github.com/weaponstats/wsdb/pkg/document"
	"github.com/weaponstats/wsdb/pkg/lifecycle"
	"github.com/weaponstats/wsdb/pkg/normalize"
)

// populator implements the Populator interface.
type populator struct {
	cfg     *config.Config
	loader  lifecycle.Loader
	metrics *iometrics.Metrics
}

// New creates a new Populator. Metrics may be nil.
func New(
	cfg *config.Config,
	op db.Operator,
	metrics *iometrics.Metrics,
) lifecycle.Populator {
	return &populator{
		cfg:     cfg,
		loader:  NewLoader(cfg, op),
		metrics: metrics,
	}
}

// PopulateFrom fetches and parses the document first, so a broken
// document never reaches the database.
func (p *populator) PopulateFrom(
	ctx context.Context,
	location string,
) (*lifecycle.LoadStats, error) {
	doc, err := Read(ctx, p.cfg, location)
	if err != nil {
		return nil, err
	}
	return p.Populate(ctx, doc)
}

// Read fetches and parses a document without touching the database.
func Read(
	ctx context.Context,
	cfg *config.Config,
	location string,
) (*document.Document, error) {
	src, err := iosource.Fetch(ctx, cfg, location)
	if err != nil {
		return nil, err
	}

	doc, err := src.Parse()
	if err != nil {
		return nil, err
	}

	cats, weapons, stats := doc.Stats()
	gn.Info(
		"Read <em>%s</em>: %d categories, %d weapons, %d stat entries",
		src.Location, cats, weapons, stats,
	)
	return doc, nil
}

// Populate normalizes the document and loads the rows.
func (p *populator) Populate(
	ctx context.Context,
	doc *document.Document,
) (*lifecycle.LoadStats, error) {
	slog.Info("Starting database population")

	rows := normalize.Normalize(doc)
	reportSkipped(rows)

	stats, err := p.loader.Load(ctx, rows)
	if err != nil {
		return nil, err
	}

	slog.Info("Population complete",
		"inserted", stats.TotalInserted(),
		"ignored", stats.TotalIgnored(),
		"skipped_stats", stats.SkippedStats,
		"skipped_ammo_stats", stats.SkippedAmmoStats,
		"duration", gnfmt.TimeString(stats.Duration.Seconds()),
	)
	gn.Info(`Population complete
Inserted <em>%s</em> rows, %s already present.
Elapsed time: <em>%s</em>`,
		humanize.Comma(stats.TotalInserted()),
		humanize.Comma(stats.TotalIgnored()),
		gnfmt.TimeString(stats.Duration.Seconds()),
	)

	if p.metrics != nil {
		p.metrics.RecordLoad(stats)
		if err = p.metrics.Write(p.cfg.MetricsFile); err != nil {
			// the load is committed already
			slog.Warn("Cannot write metrics", "error", err)
		}
	}

	return stats, nil
}

// reportSkipped warns about entries dropped by the normalizer.
func reportSkipped(rows *normalize.Rows) {
	if rows.SkippedStats == 0 && rows.SkippedAmmoStats == 0 {
		return
	}
	slog.Warn("Entries with unresolved references were skipped",
		"stats", rows.SkippedStats,
		"ammo_stats", rows.SkippedAmmoStats,
	)
	gn.Warn(
		"Skipped %d stat and %d ammo stat entries with unknown barrel or ammo",
		rows.SkippedStats, rows.SkippedAmmoStats,
	)
}
