package feed

import (
	"encoding/json"
)

// Payload is one feed page as POSTed by the upstream B2B source. Sections are
// independent; a nil section means the page did not carry it. Products stay
// raw so that one malformed record can be skipped without rejecting the page.
type Payload struct {
	Types      []TypeRecord      `json:"types,omitempty"`
	Categories []CategoryRecord  `json:"categories,omitempty"`
	Products   []json.RawMessage `json:"products,omitempty"`
}

// TypeRecord is one product type from the feed.
type TypeRecord struct {
	ID          int64             `json:"id"`
	MatrixID    *uint             `json:"matrix_id,omitempty"`
	Name        string            `json:"name"`
	Translation map[string]string `json:"translation,omitempty"`
}

// CategoryRecord is one node of the flat category list. ParentID references
// another record in the same list by external id.
type CategoryRecord struct {
	ID          int64             `json:"id"`
	MatrixID    *uint             `json:"matrix_id,omitempty"`
	Name        *string           `json:"name,omitempty"`
	ParentID    *int64            `json:"parent_id,omitempty"`
	Translation map[string]string `json:"translation,omitempty"`
}

// TranslatedField carries a locale→text map, optionally with a code
// (e.g. size has both a code and localized labels).
type TranslatedField struct {
	Code         string            `json:"code,omitempty"`
	Translations map[string]string `json:"translations,omitempty"`
}

// Brand is a nested brand reference; only the name is used.
type Brand struct {
	Name string `json:"name"`
}

// Period is a date range with both ends optional.
type Period struct {
	From *FlexTime `json:"from,omitempty"`
	To   *FlexTime `json:"to,omitempty"`
}

// ColorRecord is a nested color reference keyed by its natural code.
type ColorRecord struct {
	Code         string            `json:"code"`
	Translations map[string]string `json:"translations,omitempty"`
}

// ImageRef points at a remote media file together with its content hash.
type ImageRef struct {
	Path string `json:"path"`
	Hash string `json:"hash"`
}

// ModelRecord is the nested model carried by a product record.
type ModelRecord struct {
	ID               int64                 `json:"id"`
	MatrixID         *uint                 `json:"matrix_id,omitempty"`
	SkuMF            string                `json:"sku_mf,omitempty"`
	IsActive         FlexBool              `json:"is_active"`
	Type             *int64                `json:"type,omitempty"`
	TypeCode         string                `json:"type_code,omitempty"`
	NewPeriod        Period                `json:"new_period"`
	PreorderPeriod   Period                `json:"preorder_period"`
	CreatedAt        *FlexTime             `json:"created_at,omitempty"`
	Density          FlexString            `json:"density,omitempty"`
	Name             TranslatedField       `json:"name"`
	Material         TranslatedField       `json:"material"`
	Brand            Brand                 `json:"brand"`
	ShortDescription TranslatedField       `json:"short_description"`
	Description      TranslatedField       `json:"description"`
	Search           string                `json:"search,omitempty"`
	PatternCode      string                `json:"pattern_code,omitempty"`
	Categories       []int64               `json:"categories,omitempty"`
	Images           map[string][]ImageRef `json:"images,omitempty"`
}

// ProductRecord is one product from the feed, possibly carrying a nested
// model, color, categories and images.
type ProductRecord struct {
	ID               int64           `json:"id"`
	MatrixID         *uint           `json:"matrix_id,omitempty"`
	Sku              string          `json:"sku"`
	SkuMF            string          `json:"sku_mf,omitempty"`
	Count            FlexInt         `json:"count"`
	CountInBox       FlexInt         `json:"count_in_box"`
	CountInPackage   FlexInt         `json:"count_in_package"`
	Weight           FlexFloat       `json:"weight"`
	Type             *int64          `json:"type,omitempty"`
	TypeCode         string          `json:"type_code,omitempty"`
	NewPeriod        Period          `json:"new_period"`
	PreorderPeriod   Period          `json:"preorder_period"`
	IsActive         FlexBool        `json:"is_active"`
	CreatedAt        *FlexTime       `json:"created_at,omitempty"`
	DeletedAt        *FlexTime       `json:"deleted_at,omitempty"`
	Color            *ColorRecord    `json:"color,omitempty"`
	Barcode          string          `json:"barcode,omitempty"`
	Size             TranslatedField `json:"size"`
	Name             TranslatedField `json:"name"`
	Material         TranslatedField `json:"material"`
	Brand            Brand           `json:"brand"`
	ShortDescription TranslatedField `json:"short_description"`
	Description      TranslatedField `json:"description"`
	Search           string          `json:"search,omitempty"`
	PatternCode      string          `json:"pattern_code,omitempty"`
	Models           *ModelRecord    `json:"models,omitempty"`
	Categories       []int64         `json:"categories,omitempty"`
	Icon             []ImageRef      `json:"icon,omitempty"`
	Photo            []ImageRef      `json:"photo,omitempty"`
}
