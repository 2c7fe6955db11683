package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"photoverify/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localPushTimeout = 30 * time.Second

// localHTTPPublisher delivers events straight to the notifier worker in the push format,
// so development runs without a Pub/Sub emulator.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishSubmissionEvent(ctx context.Context, event *service.SubmissionEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	var push PubSubPushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = attributes
	push.Message.MessageID = uuid.NewString()
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s event to %s", event.Type, p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("worker answered %s event with status %d", event.Type, resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Event pushed",
		slog.String("event_type", event.Type),
		slog.String("submission_id", event.SubmissionID),
		slog.String("message_id", push.Message.MessageID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
