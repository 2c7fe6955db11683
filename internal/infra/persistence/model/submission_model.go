package model

import (
	"time"
)

// SubmissionModel is the GORM-specific struct for the 'submissions' table.
// Rows are only inserted and decided once; they are never deleted.
type SubmissionModel struct {
	ID             string `gorm:"type:varchar(64);primaryKey"`
	PartnerID      string `gorm:"type:varchar(128);not null;index:idx_submissions_key,priority:1"`
	LocationID     string `gorm:"type:varchar(128);not null;index:idx_submissions_key,priority:2"`
	BrandID        string `gorm:"type:varchar(128);not null;index:idx_submissions_key,priority:3"`
	ItemID         string `gorm:"type:varchar(128);not null;index:idx_submissions_key,priority:4"`
	RequirementID  string `gorm:"type:varchar(128);not null;index:idx_submissions_key,priority:5"`
	Status         string `gorm:"type:varchar(16);not null;index"`
	FileName       string `gorm:"type:varchar(512);not null"`
	PhotoURL       string `gorm:"column:photo_url;type:varchar(2048)"`
	StoragePath    string `gorm:"type:varchar(1024);not null"`
	UploaderUserID string `gorm:"type:varchar(128);not null"`
	ReviewComment  string `gorm:"type:text"`
	ReviewerUserID string `gorm:"type:varchar(128)"`

	CreatedAt  time.Time `gorm:"index"`
	ReviewedAt *time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubmissionModel) TableName() string {
	return "submissions"
}
