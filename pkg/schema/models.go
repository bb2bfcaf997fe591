// Package schema provides database schema models for WSdb.
// Every model is both a table definition (DDL is generated from struct
// tags) and a row ready for insertion.
//
// Tags:
//   - db: column name
//   - ddl: PostgreSQL column definition
//   - lite: SQLite column definition, when it differs from ddl
//   - gorm: column mapping used by GORM AutoMigrate
package schema

// Table names in the order the tables are created.
const (
	CategoriesTable      = "categories"
	WeaponsTable         = "weapons"
	BarrelsTable         = "barrels"
	AmmoTypesTable       = "ammo_types"
	WeaponAmmoStatsTable = "weapon_ammo_stats"
	ConfigurationsTable  = "configurations"
	ConfigDropoffsTable  = "config_dropoffs"
)

// Category is a top-level grouping of weapons, for example
// "Assault Rifles".
type Category struct {
	// ID is the 1-based position of the category in the source document.
	ID int `db:"category_id" ddl:"SERIAL PRIMARY KEY" lite:"INTEGER PRIMARY KEY" gorm:"column:category_id;primaryKey;type:integer"`

	// Name is unique among categories.
	Name string `db:"category_name" ddl:"VARCHAR(50) NOT NULL UNIQUE" gorm:"column:category_name;type:varchar(50);not null;unique"`
}

// Weapon belongs to exactly one Category.
type Weapon struct {
	// ID is the 1-based position of the weapon in the flattened
	// category/weapon traversal of the source document.
	ID int `db:"weapon_id" ddl:"SERIAL PRIMARY KEY" lite:"INTEGER PRIMARY KEY" gorm:"column:weapon_id;primaryKey;type:integer"`

	// Name is unique among weapons.
	Name string `db:"weapon_name" ddl:"VARCHAR(100) NOT NULL UNIQUE" gorm:"column:weapon_name;type:varchar(100);not null;unique"`

	// CategoryID refers to the category of the weapon.
	CategoryID int `db:"category_id" ddl:"INTEGER NOT NULL REFERENCES categories(category_id)" gorm:"column:category_id;type:integer;not null"`
}

// Barrel is a barrel attachment shared by any number of weapons.
type Barrel struct {
	// ID is the 1-based position of the name in the sorted set of all
	// barrel names of the document.
	ID int `db:"barrel_id" ddl:"SERIAL PRIMARY KEY" lite:"INTEGER PRIMARY KEY" gorm:"column:barrel_id;primaryKey;type:integer"`

	// Name is unique among barrels.
	Name string `db:"barrel_name" ddl:"VARCHAR(100) NOT NULL UNIQUE" gorm:"column:barrel_name;type:varchar(100);not null;unique"`
}

// AmmoType is an ammunition kind shared by any number of weapons.
type AmmoType struct {
	// ID is the 1-based position of the name in the sorted set of all
	// ammo names of the document.
	ID int `db:"ammo_id" ddl:"SERIAL PRIMARY KEY" lite:"INTEGER PRIMARY KEY" gorm:"column:ammo_id;primaryKey;type:integer"`

	// Name is unique among ammo types.
	Name string `db:"ammo_type_name" ddl:"VARCHAR(100) NOT NULL UNIQUE" gorm:"column:ammo_type_name;type:varchar(100);not null;unique"`
}

// WeaponAmmoStat is the magazine and reload profile of a weapon loaded
// with a particular ammo type.
type WeaponAmmoStat struct {
	WeaponID int `db:"weapon_id" ddl:"INTEGER NOT NULL REFERENCES weapons(weapon_id)" gorm:"column:weapon_id;primaryKey;type:integer"`
	AmmoID   int `db:"ammo_id" ddl:"INTEGER NOT NULL REFERENCES ammo_types(ammo_id)" gorm:"column:ammo_id;primaryKey;type:integer"`

	MagazineSize int `db:"magazine_size" ddl:"SMALLINT NOT NULL" gorm:"column:magazine_size;type:smallint;not null"`

	// EmptyReloadTime is the reload time in seconds with an empty
	// magazine, nil when unknown.
	EmptyReloadTime *float64 `db:"empty_reload_time" ddl:"DECIMAL(4,2)" gorm:"column:empty_reload_time;type:decimal(4,2)"`

	// TacticalReloadTime is the reload time in seconds with a round
	// chambered, nil when unknown.
	TacticalReloadTime *float64 `db:"tactical_reload_time" ddl:"DECIMAL(4,2)" gorm:"column:tactical_reload_time;type:decimal(4,2)"`

	HeadshotMultiplier float64 `db:"headshot_multiplier" ddl:"DECIMAL(3,1) NOT NULL" gorm:"column:headshot_multiplier;type:decimal(3,1);not null"`

	// PelletCount is 1 for everything except shotguns.
	PelletCount int `db:"pellet_count" ddl:"SMALLINT DEFAULT 1" gorm:"column:pellet_count;type:smallint;default:1"`
}

// Configuration is one weapon/barrel/ammo combination present in the
// source document.
type Configuration struct {
	// ID is assigned sequentially in discovery order.
	ID       int `db:"config_id" ddl:"SERIAL PRIMARY KEY" lite:"INTEGER PRIMARY KEY" gorm:"column:config_id;primaryKey;type:integer"`
	WeaponID int `db:"weapon_id" ddl:"INTEGER NOT NULL REFERENCES weapons(weapon_id)" gorm:"column:weapon_id;type:integer;not null"`
	BarrelID int `db:"barrel_id" ddl:"INTEGER NOT NULL REFERENCES barrels(barrel_id)" gorm:"column:barrel_id;type:integer;not null"`
	AmmoID   int `db:"ammo_id" ddl:"INTEGER NOT NULL REFERENCES ammo_types(ammo_id)" gorm:"column:ammo_id;type:integer;not null"`

	// Velocity of the projectile in m/s.
	Velocity int `db:"velocity" ddl:"SMALLINT NOT NULL" gorm:"column:velocity;type:smallint;not null"`

	// Rounds per minute for each fire mode, nil if the mode is absent.
	RPMSingle *int `db:"rpm_single" ddl:"SMALLINT" gorm:"column:rpm_single;type:smallint"`
	RPMBurst  *int `db:"rpm_burst" ddl:"SMALLINT" gorm:"column:rpm_burst;type:smallint"`
	RPMAuto   *int `db:"rpm_auto" ddl:"SMALLINT" gorm:"column:rpm_auto;type:smallint"`
}

// ConfigDropoff is the damage of a Configuration at a given range.
type ConfigDropoff struct {
	ConfigID int     `db:"config_id" ddl:"INTEGER NOT NULL REFERENCES configurations(config_id)" gorm:"column:config_id;primaryKey;type:integer"`
	Range    int     `db:"range" ddl:"SMALLINT NOT NULL" gorm:"column:range;primaryKey;type:smallint"`
	Damage   float64 `db:"damage" ddl:"DECIMAL(5,1) NOT NULL" gorm:"column:damage;type:decimal(5,1);not null"`
}
