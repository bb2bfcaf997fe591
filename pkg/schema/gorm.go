package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate in the order
// of table creation.
func AllModels() []any {
	return []any{
		&Category{},
		&Weapon{},
		&Barrel{},
		&AmmoType{},
		&WeaponAmmoStat{},
		&Configuration{},
		&ConfigDropoff{},
	}
}

// Migrate runs GORM AutoMigrate to create missing tables and columns.
// It never drops columns, so data survives schema updates.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
