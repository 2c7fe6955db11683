package usecase

import (
	"context"
	"io"

	"photoverify/internal/domain/entity"
)

// UploadInput carries one photo uploaded for a requirement.
type UploadInput struct {
	Key            entity.SubmissionKey
	FileName       string
	ContentType    string
	Size           int64
	Body           io.Reader
	IdempotencyKey string
}

// RequirementStatus is a requirement with the state of its latest submission.
type RequirementStatus struct {
	Requirement *entity.Requirement     `json:"requirement"`
	Status      entity.SubmissionStatus `json:"status"`
	Latest      *entity.Submission      `json:"latest,omitempty"`
}

// Photo is a stored submission photo.
type Photo struct {
	Body        io.ReadCloser
	ContentType string
	FileName    string
}

// SubmissionUsecase defines the partner side of the submission workflow.
type SubmissionUsecase interface {
	// Upload stores the photo and records a new submitted submission.
	Upload(ctx context.Context, identity *entity.Identity, input *UploadInput) (*entity.Submission, error)

	// GetSubmission returns one submission the caller may see.
	GetSubmission(ctx context.Context, identity *entity.Identity, submissionID string) (*entity.Submission, error)

	// LatestSubmissionFor returns the authoritative submission for a requirement of a location.
	LatestSubmissionFor(ctx context.Context, identity *entity.Identity, key entity.SubmissionKey) (*entity.Submission, error)

	// RequirementStatuses returns each requirement of an item with the status of its latest submission.
	RequirementStatuses(ctx context.Context, identity *entity.Identity, partnerID, locationID, itemID string) ([]*RequirementStatus, error)

	// OpenPhoto streams the stored photo of a submission.
	OpenPhoto(ctx context.Context, identity *entity.Identity, submissionID string) (*Photo, error)
}
