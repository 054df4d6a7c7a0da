package models

import "gorm.io/gorm"

// Migrate creates or updates the catalog schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Project{},
		&Language{},
		&Type{},
		&Category{},
		&Color{},
		&Model{},
		&CategoryModel{},
		&Product{},
		&Translation{},
		&File{},
		&ColorImage{},
		&ProductImage{},
		&ModelImage{},
	)
}
