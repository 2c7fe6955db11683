package entity

import (
	"strings"
	"time"
)

// SubmissionStatus is the review state of a submission.
type SubmissionStatus string

const (
	// SubmissionStatusNone is reported when no submission exists for a requirement. It is never stored.
	SubmissionStatusNone      SubmissionStatus = "none"
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusApproved  SubmissionStatus = "approved"
	SubmissionStatusRejected  SubmissionStatus = "rejected"
)

// IsValid checks if the status may be stored on a submission.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusSubmitted, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	default:
		return false
	}
}

// Decision is a reviewer's verdict on a submitted photo.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Status returns the submission status a decision transitions to.
func (d Decision) Status() (SubmissionStatus, bool) {
	switch d {
	case DecisionApprove:
		return SubmissionStatusApproved, true
	case DecisionReject:
		return SubmissionStatusRejected, true
	default:
		return "", false
	}
}

// SubmissionKey identifies the requirement of one location a submission answers.
type SubmissionKey struct {
	PartnerID     string `json:"partner_id" query:"partnerId"`
	LocationID    string `json:"location_id" query:"locationId"`
	BrandID       string `json:"brand_id" query:"brandId"`
	ItemID        string `json:"item_id" query:"itemId"`
	RequirementID string `json:"requirement_id" query:"requirementId"`
}

// IsComplete reports whether every component of the key is set.
func (k SubmissionKey) IsComplete() bool {
	return strings.TrimSpace(k.PartnerID) != "" &&
		strings.TrimSpace(k.LocationID) != "" &&
		strings.TrimSpace(k.BrandID) != "" &&
		strings.TrimSpace(k.ItemID) != "" &&
		strings.TrimSpace(k.RequirementID) != ""
}

// Submission is one uploaded photo answering a Requirement.
type Submission struct {
	ID             string           `json:"id"`
	PartnerID      string           `json:"partner_id"`
	LocationID     string           `json:"location_id"`
	BrandID        string           `json:"brand_id"`
	ItemID         string           `json:"item_id"`
	RequirementID  string           `json:"requirement_id"`
	Status         SubmissionStatus `json:"status"`
	FileName       string           `json:"file_name"`
	PhotoURL       string           `json:"photo_url"`
	StoragePath    string           `json:"storage_path"`
	UploaderUserID string           `json:"uploader_user_id"`
	ReviewComment  string           `json:"review_comment,omitempty"`
	ReviewerUserID string           `json:"reviewer_user_id,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	ReviewedAt     *time.Time       `json:"reviewed_at,omitempty"`
}

// Key returns the requirement key this submission answers.
func (s *Submission) Key() SubmissionKey {
	return SubmissionKey{
		PartnerID:     s.PartnerID,
		LocationID:    s.LocationID,
		BrandID:       s.BrandID,
		ItemID:        s.ItemID,
		RequirementID: s.RequirementID,
	}
}

// Ref returns the (item, requirement) pair of the submission.
func (s *Submission) Ref() RequirementRef {
	return RequirementRef{ItemID: s.ItemID, RequirementID: s.RequirementID}
}

// IsNewerThan orders submissions by creation time, then by id.
func (s *Submission) IsNewerThan(other *Submission) bool {
	if other == nil {
		return true
	}
	if !s.CreatedAt.Equal(other.CreatedAt) {
		return s.CreatedAt.After(other.CreatedAt)
	}

	return s.ID > other.ID
}

// LatestSubmission returns the most recently created submission, or nil for an empty slice.
// Equal creation times are resolved in favor of the highest id.
func LatestSubmission(submissions []*Submission) *Submission {
	var latest *Submission
	for _, submission := range submissions {
		if submission == nil {
			continue
		}
		if submission.IsNewerThan(latest) {
			latest = submission
		}
	}

	return latest
}

// ReviewDecision holds the fields a reviewer's decision writes onto a submission.
type ReviewDecision struct {
	Status         SubmissionStatus
	Comment        string
	ReviewerUserID string
	ReviewedAt     time.Time
}

// SubmissionFilter selects submissions by equality on the non-empty fields.
type SubmissionFilter struct {
	PartnerID     string
	LocationID    string
	BrandID       string
	ItemID        string
	RequirementID string
	Status        SubmissionStatus
}

// FilterForKey returns a filter matching every submission for the key.
func FilterForKey(key SubmissionKey) SubmissionFilter {
	return SubmissionFilter{
		PartnerID:     key.PartnerID,
		LocationID:    key.LocationID,
		BrandID:       key.BrandID,
		ItemID:        key.ItemID,
		RequirementID: key.RequirementID,
	}
}
