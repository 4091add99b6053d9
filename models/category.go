package models

import (
	"time"
)

// Category is a standard campaign category listings are mapped onto.
// DB: categories
type Category struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"column:name;size:100;not null;uniqueIndex:categories_name_key" json:"name"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:99" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

// RawCategory is a free-text category string harvested at ingestion
// time. Curation maps these onto standard categories; the engine only
// ever reads the resolved category_id on the campaign row.
// DB: raw_categories
type RawCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RawText   string    `gorm:"column:raw_text;type:text;not null;uniqueIndex:raw_categories_raw_text_key" json:"raw_text"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (RawCategory) TableName() string {
	return "raw_categories"
}

// CategoryMapping maps one raw category onto one standard category.
// DB: category_mappings
type CategoryMapping struct {
	ID                 uint `gorm:"primaryKey" json:"id"`
	RawCategoryID      uint `gorm:"column:raw_category_id;not null;uniqueIndex:category_mappings_raw_category_id_key" json:"raw_category_id"`
	StandardCategoryID uint `gorm:"column:standard_category_id;not null" json:"standard_category_id"`

	// Relations
	RawCategory      RawCategory `gorm:"foreignKey:RawCategoryID" json:"raw_category,omitempty"`
	StandardCategory Category    `gorm:"foreignKey:StandardCategoryID" json:"standard_category,omitempty"`
}

func (CategoryMapping) TableName() string {
	return "category_mappings"
}

// CategoryFilter holds optional category lookup criteria.
type CategoryFilter struct {
	ID   *uint
	Name *string
}
