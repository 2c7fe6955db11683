package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserProfileModel is the GORM-specific struct for the 'user_profiles' table.
type UserProfileModel struct {
	ID          string                      `gorm:"type:varchar(128);primaryKey"`
	Email       string                      `gorm:"type:varchar(320);not null;index"`
	Role        string                      `gorm:"type:varchar(16);not null"`
	PartnerID   string                      `gorm:"type:varchar(128)"`
	LocationIDs datatypes.JSONSlice[string] `gorm:"column:location_ids;not null"`
	Brands      datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// CredentialModel is the GORM-specific struct for the 'credentials' table.
// It backs the local identity provider only.
type CredentialModel struct {
	UID          string                      `gorm:"column:uid;type:varchar(128);primaryKey"`
	Email        string                      `gorm:"type:varchar(320);not null;uniqueIndex"`
	PasswordHash string                      `gorm:"type:varchar(255);not null"`
	Role         string                      `gorm:"type:varchar(16)"`
	PartnerID    string                      `gorm:"type:varchar(128)"`
	LocationIDs  datatypes.JSONSlice[string] `gorm:"column:location_ids;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

// All lists every model of the relational store, in migration order.
func All() []any {
	return []any{
		&PartnerModel{},
		&LocationModel{},
		&BrandModel{},
		&MenuItemModel{},
		&RequirementModel{},
		&SubmissionModel{},
		&UserProfileModel{},
		&CredentialModel{},
	}
}
