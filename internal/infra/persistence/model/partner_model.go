// Package model holds the GORM table definitions of the relational store.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// PartnerModel is the GORM-specific struct for the 'partners' table.
type PartnerModel struct {
	ID        string                      `gorm:"type:varchar(128);primaryKey"`
	Name      string                      `gorm:"type:varchar(255);not null"`
	ShortName string                      `gorm:"type:varchar(255);not null"`
	IsActive  bool                        `gorm:"not null"`
	Brands    datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PartnerModel) TableName() string {
	return "partners"
}

// LocationModel is the GORM-specific struct for the 'locations' table.
// Locations are keyed by their partner and their own id, mirroring partners/{id}/locations/{id}.
type LocationModel struct {
	PartnerID string                      `gorm:"type:varchar(128);primaryKey"`
	ID        string                      `gorm:"type:varchar(128);primaryKey;index:idx_locations_id"`
	Name      string                      `gorm:"type:varchar(255);not null"`
	Address   string                      `gorm:"type:varchar(512)"`
	City      string                      `gorm:"type:varchar(255)"`
	Country   string                      `gorm:"type:varchar(8)"`
	BrandIDs  datatypes.JSONSlice[string] `gorm:"column:brand_ids;not null"`
	IsActive  bool                        `gorm:"not null"`
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
