// Package iovalidate implements the Validator interface. It counts rows
// of every table and looks for rows that refer to missing parents.
// Validation only reads from the database.
package iovalidate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/db"
	"github.com/weaponstats/wsdb/pkg/lifecycle"
	"github.com/weaponstats/wsdb/pkg/schema"
	"golang.org/x/sync/errgroup"
)

type validator struct {
	operator db.Operator
	jobs     int
}

// New creates a new Validator.
func New(cfg *config.Config, op db.Operator) lifecycle.Validator {
	jobs := cfg.JobsNumber
	if jobs < 1 {
		jobs = 1
	}
	return &validator{operator: op, jobs: jobs}
}

// integrityCheck counts rows of a child table without a parent row.
type integrityCheck struct {
	table       string
	description string
	query       string
}

var integrityChecks = []integrityCheck{
	{
		table:       schema.WeaponsTable,
		description: "weapons reference non-existent categories",
		query: `SELECT COUNT(*) FROM weapons w
  LEFT JOIN categories c ON w.category_id = c.category_id
  WHERE c.category_id IS NULL`,
	},
	{
		table:       schema.ConfigurationsTable,
		description: "configurations have invalid references",
		query: `SELECT COUNT(*) FROM configurations cf
  LEFT JOIN weapons w ON cf.weapon_id = w.weapon_id
  LEFT JOIN barrels b ON cf.barrel_id = b.barrel_id
  LEFT JOIN ammo_types a ON cf.ammo_id = a.ammo_id
  WHERE w.weapon_id IS NULL OR b.barrel_id IS NULL OR a.ammo_id IS NULL`,
	},
	{
		table:       schema.ConfigDropoffsTable,
		description: "dropoffs reference non-existent configurations",
		query: `SELECT COUNT(*) FROM config_dropoffs d
  LEFT JOIN configurations cf ON d.config_id = cf.config_id
  WHERE cf.config_id IS NULL`,
	},
	{
		table:       schema.WeaponAmmoStatsTable,
		description: "ammo stats have invalid references",
		query: `SELECT COUNT(*) FROM weapon_ammo_stats s
  LEFT JOIN weapons w ON s.weapon_id = w.weapon_id
  LEFT JOIN ammo_types a ON s.ammo_id = a.ammo_id
  WHERE w.weapon_id IS NULL OR a.ammo_id IS NULL`,
	},
}

// Validate runs all queries concurrently. Issues keep a fixed order:
// empty tables in the order of creation, then orphaned rows.
func (v *validator) Validate(ctx context.Context) (*lifecycle.Report, error) {
	tables := schema.TableNames()
	counts := make([]int64, len(tables))
	orphans := make([]int64, len(integrityChecks))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(v.jobs)

	for i, tbl := range tables {
		g.Go(func() error {
			n, err := v.operator.Count(gCtx, "SELECT COUNT(*) FROM "+tbl)
			if err != nil {
				return ValidateCountError(tbl, err)
			}
			counts[i] = n
			return nil
		})
	}

	for i, chk := range integrityChecks {
		g.Go(func() error {
			n, err := v.operator.Count(gCtx, chk.query)
			if err != nil {
				return ValidateIntegrityError(chk.table, err)
			}
			orphans[i] = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &lifecycle.Report{
		Issues:      []string{},
		TableCounts: make(map[string]int64, len(tables)),
	}
	for i, tbl := range tables {
		res.TableCounts[tbl] = counts[i]
		if counts[i] == 0 {
			res.Issues = append(res.Issues, fmt.Sprintf("Table '%s' is empty", tbl))
		}
	}
	for i, chk := range integrityChecks {
		if orphans[i] > 0 {
			res.Issues = append(res.Issues,
				fmt.Sprintf("%d %s", orphans[i], chk.description))
		}
	}
	res.IsValid = len(res.Issues) == 0

	slog.Info("Validation complete",
		"valid", res.IsValid,
		"issues", len(res.Issues),
	)
	return res, nil
}
