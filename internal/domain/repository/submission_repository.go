package repository

import (
	"context"

	"photoverify/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for submission persistence.
var (
	// ErrSubmissionNotFound is returned when a submission is not found.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrSubmissionNotPending is returned when a decision targets a submission that is no longer submitted.
	ErrSubmissionNotPending = errors.New("submission is not pending review")
	// ErrDuplicateSubmission is returned when a submission id is already taken.
	ErrDuplicateSubmission = errors.New("submission already exists")
)

// SubmissionRepository stores uploaded photo submissions.
type SubmissionRepository interface {
	// CreateSubmission persists a new submission. Existing rows are never overwritten.
	CreateSubmission(ctx context.Context, submission *entity.Submission) error

	// FindSubmissionByID retrieves a submission by its id.
	FindSubmissionByID(ctx context.Context, submissionID string) (*entity.Submission, error)

	// FindSubmissions retrieves the submissions matching every non-empty field of the filter,
	// newest first.
	FindSubmissions(ctx context.Context, filter entity.SubmissionFilter) ([]*entity.Submission, error)

	// DecideSubmission applies a review decision to a submission that is still submitted.
	// It returns ErrSubmissionNotPending when the submission was already decided.
	DecideSubmission(ctx context.Context, submissionID string, decision entity.ReviewDecision) (*entity.Submission, error)
}
