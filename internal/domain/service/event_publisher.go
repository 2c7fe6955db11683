package service

import (
	"context"
	"time"
)

// SubmissionEvent describes a change to a submission, consumed by the notifier worker.
type SubmissionEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Type          string    `json:"type"`
	SubmissionID  string    `json:"submission_id"`
	PartnerID     string    `json:"partner_id"`
	LocationID    string    `json:"location_id"`
	BrandID       string    `json:"brand_id"`
	ItemID        string    `json:"item_id"`
	RequirementID string    `json:"requirement_id"`
	Status        string    `json:"status"`
	ReviewComment string    `json:"review_comment,omitempty"`
	ActorUserID   string    `json:"actor_user_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSubmissionEvent publishes a submission event for async processing
	PublishSubmissionEvent(ctx context.Context, event *SubmissionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
