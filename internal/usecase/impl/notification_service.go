package impl

import (
	"context"
	"fmt"
	"log/slog"

	"photoverify/config"
	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/domain/constants"
	"photoverify/internal/domain/entity"
	"photoverify/internal/domain/repository"
	"photoverify/internal/domain/service"
	"photoverify/internal/errors"
	"photoverify/internal/infra/metrics"
	"photoverify/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultPartnerTopicPrefix = "partner_"
	defaultReviewerTopic      = "reviewers"
)

type notificationService struct {
	partnerRepo        repository.PartnerRepository
	notificationSvc    service.NotificationService
	metrics            *metrics.Recorder
	partnerTopicPrefix string
	reviewerTopic      string
	logger             *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	PartnerRepo     repository.PartnerRepository
	NotificationSvc service.NotificationService
	Metrics         *metrics.Recorder `optional:"true"`
	Config          *config.Config
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	partnerTopicPrefix := defaultPartnerTopicPrefix
	reviewerTopic := defaultReviewerTopic
	if params.Config != nil && params.Config.Notifier != nil {
		if params.Config.Notifier.PartnerTopicPrefix != "" {
			partnerTopicPrefix = params.Config.Notifier.PartnerTopicPrefix
		}
		if params.Config.Notifier.ReviewerTopic != "" {
			reviewerTopic = params.Config.Notifier.ReviewerTopic
		}
	}

	return &notificationService{
		partnerRepo:        params.PartnerRepo,
		notificationSvc:    params.NotificationSvc,
		metrics:            params.Metrics,
		partnerTopicPrefix: partnerTopicPrefix,
		reviewerTopic:      reviewerTopic,
		logger:             params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleSubmissionEvent sends new uploads to the reviewer topic and decisions to the partner's topic.
// Unknown event types are acknowledged without sending anything.
func (s *notificationService) HandleSubmissionEvent(ctx context.Context, event *service.SubmissionEvent) error {
	if event.Type != constants.EventSubmissionCreated && event.Type != constants.EventSubmissionReviewed {
		s.log(ctx).Warn("Ignoring unknown submission event", slog.String("event_type", event.Type))

		return nil
	}

	var topic, title, body string
	locationName := s.locationName(ctx, event.PartnerID, event.LocationID)

	switch event.Type {
	case constants.EventSubmissionCreated:
		topic = s.reviewerTopic
		title = "New photo to review"
		body = fmt.Sprintf("%s uploaded a photo for %s", locationName, event.ItemID)
	case constants.EventSubmissionReviewed:
		topic = s.partnerTopicPrefix + event.PartnerID
		switch entity.SubmissionStatus(event.Status) {
		case entity.SubmissionStatusApproved:
			title = "Photo approved"
			body = fmt.Sprintf("Your photo for %s at %s was approved", event.ItemID, locationName)
		case entity.SubmissionStatusRejected:
			title = "Photo rejected"
			body = fmt.Sprintf("Your photo for %s at %s was rejected: %s", event.ItemID, locationName, event.ReviewComment)
		default:
			s.log(ctx).Warn("Ignoring review event with unexpected status", slog.String("status", event.Status))

			return nil
		}
	}

	data := map[string]string{
		"type":           event.Type,
		"submission_id":  event.SubmissionID,
		"partner_id":     event.PartnerID,
		"location_id":    event.LocationID,
		"item_id":        event.ItemID,
		"requirement_id": event.RequirementID,
		"status":         event.Status,
	}

	if err := s.notificationSvc.SendToTopic(ctx, topic, title, body, data); err != nil {
		s.metrics.NotificationSent(event.Type, "failed")

		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}
	s.metrics.NotificationSent(event.Type, "sent")

	s.log(ctx).Info("Notification sent",
		slog.String("topic", topic),
		slog.String("event_type", event.Type),
		slog.String("submission_id", event.SubmissionID))

	return nil
}

// locationName resolves a display name for the location, falling back to its id.
func (s *notificationService) locationName(ctx context.Context, partnerID, locationID string) string {
	location, err := s.partnerRepo.FindLocation(ctx, partnerID, locationID)
	if err != nil {
		if !errors.Is(err, repository.ErrLocationNotFound) {
			s.log(ctx).Warn("Failed to look up location for notification", slog.Any("error", err))
		}

		return locationID
	}
	if location.Name == "" {
		return locationID
	}

	return location.Name
}
