// Package normalize converts a nested weapons document into relational
// rows with surrogate keys assigned.
//
// Categories and weapons are numbered by their position in the document.
// Barrels and ammo types are numbered by their position in the sorted set
// of all names found in the document, so their ids do not depend on the
// order of weapons. Ids are assigned only after every name is collected.
package normalize

import (
	"slices"

	"github.com/weaponstats/wsdb/pkg/document"
	"github.com/weaponstats/wsdb/pkg/schema"
)

// Rows contains rows of every table, ready for insertion.
type Rows struct {
	Categories      []schema.Category
	Weapons         []schema.Weapon
	Barrels         []schema.Barrel
	AmmoTypes       []schema.AmmoType
	WeaponAmmoStats []schema.WeaponAmmoStat
	Configurations  []schema.Configuration
	ConfigDropoffs  []schema.ConfigDropoff

	// BarrelIDs maps barrel names to their ids.
	BarrelIDs map[string]int

	// AmmoIDs maps ammo type names to their ids.
	AmmoIDs map[string]int

	// SkippedStats is the number of stat entries dropped because their
	// barrel or ammo name could not be resolved.
	SkippedStats int

	// SkippedAmmoStats is the number of ammo_stats entries dropped
	// because their ammo name could not be resolved.
	SkippedAmmoStats int
}

// Counts returns number of rows per table.
func (r *Rows) Counts() map[string]int {
	return map[string]int{
		schema.CategoriesTable:      len(r.Categories),
		schema.WeaponsTable:         len(r.Weapons),
		schema.BarrelsTable:         len(r.Barrels),
		schema.AmmoTypesTable:       len(r.AmmoTypes),
		schema.WeaponAmmoStatsTable: len(r.WeaponAmmoStats),
		schema.ConfigurationsTable:  len(r.Configurations),
		schema.ConfigDropoffsTable:  len(r.ConfigDropoffs),
	}
}

// Total returns number of rows in all tables.
func (r *Rows) Total() int {
	var res int
	for _, v := range r.Counts() {
		res += v
	}
	return res
}

// Normalize flattens the document into rows. It never fails: stats and
// ammo stats that refer to unknown names are skipped and counted.
func Normalize(doc *document.Document) *Rows {
	n := newNormalizer(doc)
	n.collect()
	n.assignIDs()
	n.resolveConfigurations()
	n.resolveAmmoStats()
	return n.rows
}

type pendingAmmoStat struct {
	weaponID int
	ammo     string
	stat     document.AmmoStat
}

type normalizer struct {
	doc  *document.Document
	rows *Rows

	barrels map[string]struct{}
	ammo    map[string]struct{}

	// weaponIDs keeps the id of every weapon by its category and
	// weapon position.
	weaponIDs [][]int
	pending   []pendingAmmoStat
}

func newNormalizer(doc *document.Document) *normalizer {
	return &normalizer{
		doc:       doc,
		rows:      &Rows{},
		barrels:   make(map[string]struct{}),
		ammo:      make(map[string]struct{}),
		weaponIDs: make([][]int, len(doc.Categories)),
	}
}

// collect walks the document once, numbering categories and weapons
// and gathering barrel and ammo names.
func (n *normalizer) collect() {
	for i, c := range n.doc.Categories {
		catID := i + 1
		n.rows.Categories = append(n.rows.Categories,
			schema.Category{ID: catID, Name: c.Name})

		n.weaponIDs[i] = make([]int, len(c.Weapons))
		for j, w := range c.Weapons {
			weaponID := len(n.rows.Weapons) + 1
			n.weaponIDs[i][j] = weaponID
			n.rows.Weapons = append(n.rows.Weapons, schema.Weapon{
				ID:         weaponID,
				Name:       w.Name,
				CategoryID: catID,
			})

			for _, st := range w.Stats {
				n.barrels[st.BarrelType] = struct{}{}
				n.ammo[st.AmmoType] = struct{}{}
			}

			names := make([]string, 0, len(w.AmmoStats))
			for k := range w.AmmoStats {
				names = append(names, k)
			}
			slices.Sort(names)
			for _, name := range names {
				n.ammo[name] = struct{}{}
				n.pending = append(n.pending, pendingAmmoStat{
					weaponID: weaponID,
					ammo:     name,
					stat:     w.AmmoStats[name],
				})
			}
		}
	}
}

func (n *normalizer) assignIDs() {
	var barrels, ammo []string
	n.rows.BarrelIDs, barrels = numberSet(n.barrels)
	n.rows.AmmoIDs, ammo = numberSet(n.ammo)

	n.rows.Barrels = make([]schema.Barrel, len(barrels))
	for i, v := range barrels {
		n.rows.Barrels[i] = schema.Barrel{ID: i + 1, Name: v}
	}
	n.rows.AmmoTypes = make([]schema.AmmoType, len(ammo))
	for i, v := range ammo {
		n.rows.AmmoTypes[i] = schema.AmmoType{ID: i + 1, Name: v}
	}
}

// numberSet sorts names and maps each of them to its 1-based position.
func numberSet(set map[string]struct{}) (map[string]int, []string) {
	names := make([]string, 0, len(set))
	for k := range set {
		names = append(names, k)
	}
	slices.Sort(names)

	ids := make(map[string]int, len(names))
	for i, v := range names {
		ids[v] = i + 1
	}
	return ids, names
}

// resolveConfigurations walks the stats a second time. Configuration
// ids follow the order of discovery, skipped stats take no id.
func (n *normalizer) resolveConfigurations() {
	for i, c := range n.doc.Categories {
		for j, w := range c.Weapons {
			weaponID := n.weaponIDs[i][j]
			for _, st := range w.Stats {
				barrelID, okBarrel := n.rows.BarrelIDs[st.BarrelType]
				ammoID, okAmmo := n.rows.AmmoIDs[st.AmmoType]
				if !okBarrel || !okAmmo {
					n.rows.SkippedStats++
					continue
				}

				configID := len(n.rows.Configurations) + 1
				n.rows.Configurations = append(n.rows.Configurations,
					schema.Configuration{
						ID:        configID,
						WeaponID:  weaponID,
						BarrelID:  barrelID,
						AmmoID:    ammoID,
						Velocity:  st.Velocity,
						RPMSingle: st.RPMSingle,
						RPMBurst:  st.RPMBurst,
						RPMAuto:   st.RPMAuto,
					})

				for _, d := range st.Dropoffs {
					n.rows.ConfigDropoffs = append(n.rows.ConfigDropoffs,
						schema.ConfigDropoff{
							ConfigID: configID,
							Range:    d.Range,
							Damage:   d.Damage,
						})
				}
			}
		}
	}
}

func (n *normalizer) resolveAmmoStats() {
	for _, v := range n.pending {
		ammoID, ok := n.rows.AmmoIDs[v.ammo]
		if !ok {
			n.rows.SkippedAmmoStats++
			continue
		}

		pellets := 1
		if v.stat.PelletCount != nil {
			pellets = *v.stat.PelletCount
		}
		n.rows.WeaponAmmoStats = append(n.rows.WeaponAmmoStats,
			schema.WeaponAmmoStat{
				WeaponID:           v.weaponID,
				AmmoID:             ammoID,
				MagazineSize:       v.stat.MagSize,
				EmptyReloadTime:    v.stat.EmptyReload,
				TacticalReloadTime: v.stat.TacticalReload,
				HeadshotMultiplier: v.stat.HeadshotMultiplier,
				PelletCount:        pellets,
			})
	}
}
