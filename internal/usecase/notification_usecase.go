package usecase

import (
	"context"

	"photoverify/internal/domain/service"
)

// NotificationUsecase turns submission events into push notifications.
type NotificationUsecase interface {
	// HandleSubmissionEvent notifies reviewers of new uploads and partners of decisions.
	HandleSubmissionEvent(ctx context.Context, event *service.SubmissionEvent) error
}
