// Package document describes the nested weapons document consumed by
// WSdb and parses it from JSON or YAML.
package document

// Document is the root of a weapons document.
type Document struct {
	Categories []Category `json:"categories" yaml:"categories"`
}

// Category groups weapons of the same class.
type Category struct {
	Name    string   `json:"name" yaml:"name"`
	Weapons []Weapon `json:"weapons" yaml:"weapons"`
}

// Weapon carries ballistic data for every barrel/ammo combination and
// magazine data for every ammo type it accepts.
type Weapon struct {
	Name  string `json:"name" yaml:"name"`
	Stats []Stat `json:"stats" yaml:"stats"`

	// AmmoStats is keyed by ammo type name.
	AmmoStats map[string]AmmoStat `json:"ammo_stats" yaml:"ammo_stats"`
}

// Stat is ballistic data of a weapon with a particular barrel and ammo.
type Stat struct {
	BarrelType string    `json:"barrel_type" yaml:"barrel_type"`
	AmmoType   string    `json:"ammo_type" yaml:"ammo_type"`
	Velocity   int       `json:"velocity" yaml:"velocity"`
	RPMSingle  *int      `json:"rpm_single,omitempty" yaml:"rpm_single,omitempty"`
	RPMBurst   *int      `json:"rpm_burst,omitempty" yaml:"rpm_burst,omitempty"`
	RPMAuto    *int      `json:"rpm_auto,omitempty" yaml:"rpm_auto,omitempty"`
	Dropoffs   []Dropoff `json:"dropoffs" yaml:"dropoffs"`
}

// Dropoff is damage at a given range in meters.
type Dropoff struct {
	Range  int     `json:"range" yaml:"range"`
	Damage float64 `json:"damage" yaml:"damage"`
}

// AmmoStat is magazine and reload data of a weapon with an ammo type.
type AmmoStat struct {
	MagSize            int      `json:"mag_size" yaml:"mag_size"`
	EmptyReload        *float64 `json:"empty_reload,omitempty" yaml:"empty_reload,omitempty"`
	TacticalReload     *float64 `json:"tactical_reload,omitempty" yaml:"tactical_reload,omitempty"`
	HeadshotMultiplier float64  `json:"headshot_multiplier" yaml:"headshot_multiplier"`

	// PelletCount is nil when the document omits it.
	PelletCount *int `json:"pellet_count,omitempty" yaml:"pellet_count,omitempty"`
}
