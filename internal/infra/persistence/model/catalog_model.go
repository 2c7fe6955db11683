package model

import (
	"time"

	"gorm.io/datatypes"
)

// BrandModel is the GORM-specific struct for the 'brands' table.
type BrandModel struct {
	ID         string                      `gorm:"type:varchar(128);primaryKey"`
	Name       string                      `gorm:"type:varchar(255);not null"`
	Categories datatypes.JSONSlice[string] `gorm:"not null"`
	IsActive   bool                        `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// MenuItemModel is the GORM-specific struct for the 'menu_items' table.
type MenuItemModel struct {
	BrandID     string `gorm:"type:varchar(128);primaryKey"`
	ID          string `gorm:"type:varchar(128);primaryKey"`
	Name        string `gorm:"type:varchar(255);not null"`
	Category    string `gorm:"type:varchar(32);not null"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"type:varchar(1024)"`
	SortOrder   int    `gorm:"not null"`
	IsActive    bool   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}

// RequirementModel is the GORM-specific struct for the 'requirements' table.
type RequirementModel struct {
	BrandID         string                      `gorm:"type:varchar(128);primaryKey"`
	ItemID          string                      `gorm:"type:varchar(128);primaryKey"`
	ID              string                      `gorm:"type:varchar(128);primaryKey"`
	Title           string                      `gorm:"type:varchar(255);not null"`
	AngleHint       string                      `gorm:"type:varchar(512)"`
	ExampleImageURL string                      `gorm:"column:example_image_url;type:varchar(1024)"`
	Checklist       datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (RequirementModel) TableName() string {
	return "requirements"
}
