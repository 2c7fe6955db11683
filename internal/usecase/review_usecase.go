package usecase

import (
	"context"

	"photoverify/internal/domain/entity"
)

// PendingSubmission is a submitted photo enriched with the names the review queue displays.
// Lookups that fail fall back to the raw ids.
type PendingSubmission struct {
	*entity.Submission

	ItemName         string          `json:"item_name"`
	ItemCategory     entity.Category `json:"item_category"`
	RequirementTitle string          `json:"requirement_title"`
	ExampleImageURL  string          `json:"example_image_url"`
	LocationName     string          `json:"location_name"`
	LocationAddress  string          `json:"location_address"`
}

// DecideInput is a reviewer's verdict on a submission.
type DecideInput struct {
	SubmissionID string          `json:"-" param:"id" validate:"required"`
	Decision     entity.Decision `json:"decision" validate:"required,oneof=approve reject"`
	Comment      string          `json:"comment"`
}

// ReviewUsecase defines the reviewer side of the submission workflow.
type ReviewUsecase interface {
	// ListPending returns every submission awaiting a decision, oldest first.
	ListPending(ctx context.Context, identity *entity.Identity) ([]*PendingSubmission, error)

	// Decide approves or rejects a submitted submission.
	Decide(ctx context.Context, identity *entity.Identity, input *DecideInput) (*entity.Submission, error)
}
