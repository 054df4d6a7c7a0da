package models

import "time"

// Project is the owning scope for imported catalog entities.
// The B2B feed always lands in the project addressed by the configured slug.
type Project struct {
	ID   uint   `gorm:"primaryKey"`
	Slug string `gorm:"uniqueIndex;size:64"`
	Name string `gorm:"size:255"`
}

// Language is a known locale; translations referencing unknown locales are skipped.
type Language struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"uniqueIndex;size:8"`
	Name string `gorm:"size:64"`
}

// Type is a product type from the feed.
type Type struct {
	ID    uint   `gorm:"primaryKey"`
	B2bID int64  `gorm:"column:b2b_id;uniqueIndex"`
	Name  string `gorm:"size:255"`
}

// Category is a catalog category. The parent graph forms a forest; Position
// is assigned in first-resolution order within one import run and defines a
// stable sibling ordering. IsSystem marks administrative categories matched
// by name against a configured set.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	B2bID     int64  `gorm:"column:b2b_id;uniqueIndex"`
	Name      string `gorm:"size:255"`
	ParentID  *uint  `gorm:"index"`
	Parent    *Category
	Position  int
	IsSystem  bool
	ProjectID *uint
}

// Color is keyed by its natural code from the feed; Name holds the
// default-locale translation.
type Color struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"uniqueIndex;size:64"`
	Name string `gorm:"size:255"`
}

// Model groups product variants. Scalar date fields are pointers because the
// feed may omit or garble them; a nil means "no value".
type Model struct {
	ID                  uint   `gorm:"primaryKey"`
	B2bID               int64  `gorm:"column:b2b_id;uniqueIndex"`
	SkuMF               string `gorm:"column:sku_mf;size:64;index"`
	IsActive            bool
	TypeID              *uint
	TypeCode            string `gorm:"size:64"`
	NewFrom             *time.Time
	NewTo               *time.Time
	PreorderFrom        *time.Time
	PreorderTo          *time.Time
	CreatedAt           *time.Time `gorm:"autoCreateTime:false"`
	Density             string     `gorm:"size:64"`
	NameB2b             string  `gorm:"column:name_b2b;size:255"`
	Material            string  `gorm:"size:255"`
	Brand               string  `gorm:"size:255"`
	ShortDescriptionB2b string  `gorm:"column:short_description_b2b;type:text"`
	DescriptionB2b      string  `gorm:"column:description_b2b;type:text"`
	PatternCode         *string `gorm:"size:64"`
	ProjectID           *uint
}

// CategoryModel links a model to a category with a sibling position.
// Membership is synchronized to exactly the set declared by the latest feed
// record for the model.
type CategoryModel struct {
	ID         uint `gorm:"primaryKey"`
	ModelID    uint `gorm:"index:idx_category_model,unique"`
	CategoryID uint `gorm:"index:idx_category_model,unique"`
	Position   int
}

// Product is one sellable catalog entry.
type Product struct {
	ID                  uint   `gorm:"primaryKey"`
	B2bID               int64  `gorm:"column:b2b_id;uniqueIndex"`
	Sku                 string `gorm:"size:64;index"`
	SkuMF               string `gorm:"column:sku_mf;size:64"`
	Count               int
	CountInBox          int
	CountInPackage      int
	Weight              float64
	TypeID              *uint
	TypeCode            string `gorm:"size:64"`
	NewFrom             *time.Time
	NewTo               *time.Time
	PreorderFrom        *time.Time
	PreorderTo          *time.Time
	IsActive            bool
	CreatedAt           *time.Time `gorm:"autoCreateTime:false"`
	DeletedAt           *time.Time
	ColorID             *uint
	Barcode             string  `gorm:"size:64"`
	Size                string  `gorm:"size:255"`
	SizeCode            string  `gorm:"size:64"`
	NameB2b             string  `gorm:"column:name_b2b;size:255"`
	Material            string  `gorm:"size:255"`
	Brand               string  `gorm:"size:255"`
	ShortDescriptionB2b string  `gorm:"column:short_description_b2b;type:text"`
	DescriptionB2b      string  `gorm:"column:description_b2b;type:text"`
	Search              *string `gorm:"size:255"`
	PatternCode         *string `gorm:"size:64"`
	ProjectID           *uint

	Categories []*Category `gorm:"many2many:product_categories"`
	Models     []*Model    `gorm:"many2many:product_models"`
}

// Translation holds one localized string for one field of one entity.
// At most one row exists per (language, entity type, entity id, field).
type Translation struct {
	ID         uint   `gorm:"primaryKey"`
	LanguageID uint   `gorm:"index:idx_translation_key,unique"`
	EntityType string `gorm:"size:32;index:idx_translation_key,unique"`
	EntityID   uint   `gorm:"index:idx_translation_key,unique"`
	Field      string `gorm:"size:64;index:idx_translation_key,unique"`
	Value      string `gorm:"type:text"`
}

// File is a materialized media file, deduplicated by content hash: identical
// content is never fetched or optimized twice regardless of how many
// entities reference it.
type File struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255"`
	Size int64
	Hash string `gorm:"uniqueIndex;size:64"`
	Mime string `gorm:"size:128"`
	Path string `gorm:"size:512"`
}

// ColorImage links a color swatch icon to a (model, color) pair.
// ModelID is nullable: a color may carry a model-independent icon.
type ColorImage struct {
	ID      uint `gorm:"primaryKey"`
	ModelID *uint
	ColorID uint `gorm:"index"`
	FileID  *uint
}

// ProductImage is an ordered product photo; the first photo of a feed
// record is flagged primary.
type ProductImage struct {
	ID        uint `gorm:"primaryKey"`
	ProductID uint `gorm:"index"`
	FileID    uint
	Position  int
	IsPrimary bool
}

// ModelImage classifies a model photo into a system image-type slug bucket
// (base photo, package photo, ...).
type ModelImage struct {
	ID       uint   `gorm:"primaryKey"`
	ModelID  uint   `gorm:"index"`
	FileID   uint
	TypeSlug string `gorm:"size:64"`
}
