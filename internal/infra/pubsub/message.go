package pubsub

import (
	"encoding/json"

	"photoverify/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/submission-events"

// PubSubPushMessage is the body a push subscription POSTs to its endpoint.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// encodeEvent returns the message payload and the attributes subscriptions filter on.
func encodeEvent(event *service.SubmissionEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "marshal submission event")
	}

	attributes := map[string]string{
		"event_type":    event.Type,
		"submission_id": event.SubmissionID,
		"partner_id":    event.PartnerID,
		"location_id":   event.LocationID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}
