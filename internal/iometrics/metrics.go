// Package iometrics collects load and validation metrics and writes them
// in Prometheus text format for the node_exporter textfile collector.
package iometrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/weaponstats/wsdb/pkg/lifecycle"
)

const namespace = "wsdb"

// Metrics holds collectors of one wsdb run.
type Metrics struct {
	registry *prometheus.Registry

	rowsInserted *prometheus.CounterVec
	rowsIgnored  *prometheus.CounterVec
	skipped      *prometheus.CounterVec
	loadDuration prometheus.Gauge
	lastLoad     prometheus.Gauge

	tableRows        *prometheus.GaugeVec
	validationIssues prometheus.Gauge
	valid            prometheus.Gauge
}

// New creates Metrics with its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rowsInserted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_inserted_total",
			Help:      "Rows inserted by the last load, per table.",
		}, []string{"table"}),
		rowsIgnored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_ignored_total",
			Help:      "Rows that collided with existing rows, per table.",
		}, []string{"table"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_skipped_total",
			Help:      "Document entries with unresolved references.",
		}, []string{"kind"}),
		loadDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Duration of the last load.",
		}),
		lastLoad: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_load_timestamp_seconds",
			Help:      "Unix time of the last successful load.",
		}),
		tableRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "table_rows",
			Help:      "Rows per table at the last validation.",
		}, []string{"table"}),
		validationIssues: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "validation_issues",
			Help:      "Number of issues found by the last validation.",
		}),
		valid: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "valid",
			Help:      "1 if the last validation found no issues.",
		}),
	}

	m.registry.MustRegister(
		m.rowsInserted,
		m.rowsIgnored,
		m.skipped,
		m.loadDuration,
		m.lastLoad,
		m.tableRows,
		m.validationIssues,
		m.valid,
	)
	return m
}

// Registry exposes the registry, for example to serve it over HTTP.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordLoad adds statistics of a successful load.
func (m *Metrics) RecordLoad(stats *lifecycle.LoadStats) {
	for k, v := range stats.Inserted {
		m.rowsInserted.WithLabelValues(k).Add(float64(v))
	}
	for k, v := range stats.Ignored {
		m.rowsIgnored.WithLabelValues(k).Add(float64(v))
	}
	m.skipped.WithLabelValues("stat").Add(float64(stats.SkippedStats))
	m.skipped.WithLabelValues("ammo_stat").Add(float64(stats.SkippedAmmoStats))
	m.loadDuration.Set(stats.Duration.Seconds())
	m.lastLoad.Set(float64(time.Now().Unix()))
}

// RecordValidation stores the outcome of a validation.
func (m *Metrics) RecordValidation(r *lifecycle.Report) {
	for k, v := range r.TableCounts {
		m.tableRows.WithLabelValues(k).Set(float64(v))
	}
	m.validationIssues.Set(float64(len(r.Issues)))
	if r.IsValid {
		m.valid.Set(1)
	} else {
		m.valid.Set(0)
	}
}

// Write saves metrics to path atomically. Empty path is a no-op.
func (m *Metrics) Write(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return WriteError(path, err)
	}
	return nil
}
