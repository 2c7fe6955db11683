// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"photoverify/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// messagingClient is the subset of *messaging.Client used for topic pushes.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messagingClient
	logger *slog.Logger
}

// logOnlyService stands in when Firebase is not configured.
type logOnlyService struct {
	logger *slog.Logger
}

// NewNotificationService creates the FCM notification service, or a log-only one without Firebase
func NewNotificationService(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.NotificationService, error) {
	if app == nil {
		logger.Info("Firebase not configured, notifications are logged only")

		return &logOnlyService{logger: logger}, nil
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendToTopic sends a push notification to every device subscribed to the topic
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	s.logger.Debug("Notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

func (s *logOnlyService) SendToTopic(_ context.Context, topic, title, _ string, _ map[string]string) error {
	s.logger.Info("Notification skipped, messaging disabled",
		slog.String("topic", topic),
		slog.String("title", title),
	)

	return nil
}
