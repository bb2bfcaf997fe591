package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/weaponstats/wsdb/pkg/db"
)

// Table is implemented by every model of the schema.
type Table interface {
	// TableName returns the name of the table.
	TableName() string

	// TableDDL returns CREATE TABLE statement for the dialect.
	TableDDL(db.Dialect) string

	// IndexDDL returns CREATE INDEX statements of the table.
	IndexDDL() []string

	// ConflictKey returns the natural unique key of the table.
	// Inserts that collide on this key are ignored.
	ConflictKey() []string

	// Values returns column values in the order of Columns.
	Values() []any
}

// Tables returns empty models in the order of table creation.
func Tables() []Table {
	return []Table{
		Category{},
		Weapon{},
		Barrel{},
		AmmoType{},
		WeaponAmmoStat{},
		Configuration{},
		ConfigDropoff{},
	}
}

// TableNames returns names of all tables in the order of creation.
func TableNames() []string {
	tables := Tables()
	res := make([]string, len(tables))
	for i, v := range tables {
		res[i] = v.TableName()
	}
	return res
}

// Columns returns column names of a model, quoted where needed.
func Columns(model any) []string {
	t := modelType(model)
	var res []string
	for i := range t.NumField() {
		if col := t.Field(i).Tag.Get("db"); col != "" {
			res = append(res, db.QuoteIdent(col))
		}
	}
	return res
}

// Sequences returns names of sequences created for SERIAL keys, in the
// order of table creation.
func Sequences() []string {
	var res []string
	for _, v := range Tables() {
		if seq := sequenceName(v); seq != "" {
			res = append(res, seq)
		}
	}
	return res
}

// sequenceName follows PostgreSQL naming of implicit SERIAL sequences.
func sequenceName(tbl Table) string {
	t := modelType(tbl)
	for i := range t.NumField() {
		f := t.Field(i)
		if strings.HasPrefix(f.Tag.Get("ddl"), "SERIAL") {
			return fmt.Sprintf("%s_%s_seq", tbl.TableName(), f.Tag.Get("db"))
		}
	}
	return ""
}

// generateDDL creates a CREATE TABLE statement from struct tags.
// SQLite definitions are taken from `lite` tags when they are present.
func generateDDL(
	model any,
	tableName string,
	d db.Dialect,
	constraints ...string,
) string {
	t := modelType(model)

	var columns []string
	for i := range t.NumField() {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")
		if d == db.SQLite {
			if lite := field.Tag.Get("lite"); lite != "" {
				ddlTag = lite
			}
		}

		if dbTag != "" && ddlTag != "" {
			columns = append(columns,
				fmt.Sprintf("    %s %s", db.QuoteIdent(dbTag), ddlTag))
		}
	}
	for _, v := range constraints {
		columns = append(columns, "    "+v)
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))
}

func modelType(model any) reflect.Type {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// nullable converts an optional value to a bind argument.
func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

// Category DDL methods
func (c Category) TableName() string {
	return CategoriesTable
}

func (c Category) TableDDL(d db.Dialect) string {
	return generateDDL(c, c.TableName(), d)
}

func (c Category) IndexDDL() []string {
	return nil
}

func (c Category) ConflictKey() []string {
	return []string{"category_name"}
}

func (c Category) Values() []any {
	return []any{c.ID, c.Name}
}

// Weapon DDL methods
func (w Weapon) TableName() string {
	return WeaponsTable
}

func (w Weapon) TableDDL(d db.Dialect) string {
	return generateDDL(w, w.TableName(), d)
}

func (w Weapon) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_weapons_category ON weapons(category_id);",
	}
}

func (w Weapon) ConflictKey() []string {
	return []string{"weapon_name"}
}

func (w Weapon) Values() []any {
	return []any{w.ID, w.Name, w.CategoryID}
}

// Barrel DDL methods
func (b Barrel) TableName() string {
	return BarrelsTable
}

func (b Barrel) TableDDL(d db.Dialect) string {
	return generateDDL(b, b.TableName(), d)
}

func (b Barrel) IndexDDL() []string {
	return nil
}

func (b Barrel) ConflictKey() []string {
	return []string{"barrel_name"}
}

func (b Barrel) Values() []any {
	return []any{b.ID, b.Name}
}

// AmmoType DDL methods
func (a AmmoType) TableName() string {
	return AmmoTypesTable
}

func (a AmmoType) TableDDL(d db.Dialect) string {
	return generateDDL(a, a.TableName(), d)
}

func (a AmmoType) IndexDDL() []string {
	return nil
}

func (a AmmoType) ConflictKey() []string {
	return []string{"ammo_type_name"}
}

func (a AmmoType) Values() []any {
	return []any{a.ID, a.Name}
}

// WeaponAmmoStat DDL methods
func (s WeaponAmmoStat) TableName() string {
	return WeaponAmmoStatsTable
}

func (s WeaponAmmoStat) TableDDL(d db.Dialect) string {
	return generateDDL(s, s.TableName(), d, "PRIMARY KEY (weapon_id, ammo_id)")
}

func (s WeaponAmmoStat) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_weapon_ammo_stats_weapon ON weapon_ammo_stats(weapon_id);",
	}
}

func (s WeaponAmmoStat) ConflictKey() []string {
	return []string{"weapon_id", "ammo_id"}
}

func (s WeaponAmmoStat) Values() []any {
	return []any{
		s.WeaponID,
		s.AmmoID,
		s.MagazineSize,
		nullable(s.EmptyReloadTime),
		nullable(s.TacticalReloadTime),
		s.HeadshotMultiplier,
		s.PelletCount,
	}
}

// Configuration DDL methods
func (c Configuration) TableName() string {
	return ConfigurationsTable
}

func (c Configuration) TableDDL(d db.Dialect) string {
	return generateDDL(c, c.TableName(), d, "UNIQUE (weapon_id, barrel_id, ammo_id)")
}

func (c Configuration) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_configurations_weapon ON configurations(weapon_id);",
	}
}

func (c Configuration) ConflictKey() []string {
	return []string{"weapon_id", "barrel_id", "ammo_id"}
}

func (c Configuration) Values() []any {
	return []any{
		c.ID,
		c.WeaponID,
		c.BarrelID,
		c.AmmoID,
		c.Velocity,
		nullable(c.RPMSingle),
		nullable(c.RPMBurst),
		nullable(c.RPMAuto),
	}
}

// ConfigDropoff DDL methods
func (cd ConfigDropoff) TableName() string {
	return ConfigDropoffsTable
}

func (cd ConfigDropoff) TableDDL(d db.Dialect) string {
	return generateDDL(cd, cd.TableName(), d, `PRIMARY KEY (config_id, "range")`)
}

func (cd ConfigDropoff) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_config_dropoffs_config ON config_dropoffs(config_id);",
		`CREATE INDEX IF NOT EXISTS idx_config_dropoffs_range ON config_dropoffs("range");`,
	}
}

func (cd ConfigDropoff) ConflictKey() []string {
	return []string{"config_id", db.QuoteIdent("range")}
}

func (cd ConfigDropoff) Values() []any {
	return []any{cd.ConfigID, cd.Range, cd.Damage}
}
