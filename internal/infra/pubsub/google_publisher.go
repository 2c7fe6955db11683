package pubsub

import (
	"context"
	"log/slog"

	"photoverify/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to topicID and fails fast when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "get topic %s", topic)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// PublishSubmissionEvent blocks until the server acknowledged the message.
func (p *googlePubSubPublisher) PublishSubmissionEvent(ctx context.Context, event *service.SubmissionEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	messageID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s event for submission %s", event.Type, event.SubmissionID)
	}

	p.logger.Debug("[GooglePubSub] Event published",
		slog.String("event_type", event.Type),
		slog.String("submission_id", event.SubmissionID),
		slog.String("message_id", messageID),
	)

	return nil
}

// Close flushes pending messages before releasing the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
