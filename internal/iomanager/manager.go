// Package iomanager ties schema management, population and validation
// of one database together. Commands of the CLI use it as the single
// entry point to the store.
package iomanager

import (
	"context"
	"log/slog"

	"github.com/weaponstats/wsdb/internal/iodb"
	"github.com/weaponstats/wsdb/internal/iometrics"
	"github.com/weaponstats/wsdb/internal/iooptimize"
	"github.com/weaponstats/wsdb/internal/iopopulate"
	"github.com/weaponstats/wsdb/internal/ioschema"
	"github.com/weaponstats/wsdb/internal/iovalidate"
	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/db"
	"github.com/weaponstats/wsdb/pkg/document"
	"github.com/weaponstats/wsdb/pkg/lifecycle"
)

// Manager exposes public operations of the database lifecycle.
type Manager struct {
	cfg       *config.Config
	operator  db.Operator
	schema    lifecycle.SchemaManager
	populator lifecycle.Populator
	validator lifecycle.Validator
	optimizer lifecycle.Optimizer
	metrics   *iometrics.Metrics
}

// Open connects to the database described by cfg and returns a Manager
// for it. The caller must Close the Manager.
func Open(ctx context.Context, cfg *config.Config) (*Manager, error) {
	op, err := iodb.Open(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}
	return New(cfg, op), nil
}

// New creates a Manager for an already connected operator.
func New(cfg *config.Config, op db.Operator) *Manager {
	metrics := iometrics.New()
	return &Manager{
		cfg:       cfg,
		operator:  op,
		schema:    ioschema.NewManager(op),
		populator: iopopulate.New(cfg, op, metrics),
		validator: iovalidate.New(cfg, op),
		optimizer: iooptimize.NewOptimizer(op),
		metrics:   metrics,
	}
}

// Operator returns the underlying store.
func (m *Manager) Operator() db.Operator {
	return m.operator
}

// Metrics returns collectors filled by Populate and ValidateData.
func (m *Manager) Metrics() *iometrics.Metrics {
	return m.metrics
}

// Close closes the database connection.
func (m *Manager) Close() error {
	return m.operator.Close()
}

// TestConnection runs a trivial query against the store.
func (m *Manager) TestConnection(ctx context.Context) error {
	if _, err := m.operator.Count(ctx, "SELECT 1"); err != nil {
		return ConnectionTestError(m.operator.Dialect().String(), err)
	}
	return nil
}

// HasSchema is true when the database contains any tables.
func (m *Manager) HasSchema(ctx context.Context) (bool, error) {
	return m.operator.HasTables(ctx)
}

// CreateSchema creates missing tables and indexes.
func (m *Manager) CreateSchema(ctx context.Context) error {
	return m.schema.Create(ctx)
}

// ResetDatabase drops everything and creates the schema again.
func (m *Manager) ResetDatabase(ctx context.Context) error {
	return m.schema.Reset(ctx)
}

// ClearData removes all rows and keeps the schema.
func (m *Manager) ClearData(ctx context.Context) error {
	return m.schema.Clear(ctx)
}

// MigrateSchema brings the schema up to date with the models.
func (m *Manager) MigrateSchema(ctx context.Context) error {
	return m.schema.Migrate(ctx)
}

// Optimize reclaims storage and refreshes planner statistics.
func (m *Manager) Optimize(ctx context.Context) error {
	return m.optimizer.Optimize(ctx)
}

// Populate loads a parsed document. The database must have a schema.
func (m *Manager) Populate(
	ctx context.Context,
	doc *document.Document,
) (*lifecycle.LoadStats, error) {
	if err := m.checkSchema(ctx); err != nil {
		return nil, err
	}
	return m.populator.Populate(ctx, doc)
}

// PopulateFrom reads a document from location and loads it. Empty
// location means the built-in sample document. Fetch and parse errors
// are reported before the database is queried.
func (m *Manager) PopulateFrom(
	ctx context.Context,
	location string,
) (*lifecycle.LoadStats, error) {
	doc, err := iopopulate.Read(ctx, m.cfg, location)
	if err != nil {
		return nil, err
	}
	return m.Populate(ctx, doc)
}

// ValidateData checks counts and references and records the outcome
// in metrics.
func (m *Manager) ValidateData(ctx context.Context) (*lifecycle.Report, error) {
	report, err := m.validator.Validate(ctx)
	if err != nil {
		return nil, err
	}

	m.metrics.RecordValidation(report)
	if err = m.metrics.Write(m.cfg.MetricsFile); err != nil {
		slog.Warn("Cannot write metrics", "error", err)
	}
	return report, nil
}

func (m *Manager) checkSchema(ctx context.Context) error {
	ok, err := m.operator.HasTables(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return EmptyDatabaseError()
	}
	return nil
}
