package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"photoverify/config"
	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/domain/constants"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/domain/service"
	"photoverify/internal/errors"
	mockUsecase "photoverify/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	t.Helper()

	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	return NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	}), notificationUC
}

func pushBody(t *testing.T, event *service.SubmissionEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func reviewedEvent() *service.SubmissionEvent {
	return &service.SubmissionEvent{
		Type:         constants.EventSubmissionReviewed,
		SubmissionID: "sub-1",
		PartnerID:    "P",
		LocationID:   "L",
		Status:       "approved",
	}
}

func TestPushHandler_DeliversEvent(t *testing.T) {
	h, notificationUC := createTestPushHandler(t)
	notificationUC.EXPECT().HandleSubmissionEvent(mock.Anything, mock.MatchedBy(func(event *service.SubmissionEvent) bool {
		return event.SubmissionID == "sub-1" && event.Type == constants.EventSubmissionReviewed
	})).RunAndReturn(func(ctx context.Context, _ *service.SubmissionEvent) error {
		assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))
		assert.NotNil(t, deliverycontext.GetLogger(ctx))

		return nil
	})

	rec := servePush(h, pushBody(t, reviewedEvent(), map[string]string{"request_id": "req-from-attributes"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RequestIDFromEvent(t *testing.T) {
	h, notificationUC := createTestPushHandler(t)
	event := reviewedEvent()
	event.RequestID = "req-from-event"
	notificationUC.EXPECT().HandleSubmissionEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.SubmissionEvent) error {
			assert.Equal(t, "req-from-event", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	rec := servePush(h, pushBody(t, event, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestPushHandler(t)

			rec := servePush(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_FailuresAndRetries(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "send failure is retried", err: errors.New("fcm unavailable"), wantCode: http.StatusServiceUnavailable},
		{name: "internal app error is retried", err: domainerrors.ErrInternalError, wantCode: http.StatusServiceUnavailable},
		{name: "client error is acknowledged", err: domainerrors.ErrInvalidArgument, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationUC := createTestPushHandler(t)
			notificationUC.EXPECT().HandleSubmissionEvent(mock.Anything, mock.Anything).Return(tt.err)

			rec := servePush(h, pushBody(t, reviewedEvent(), nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_RejectsUnverifiedPush(t *testing.T) {
	h, _ := createTestPushHandler(t)
	h.verifyToken = func(*http.Request) error { return errors.New("bad token") }

	rec := servePush(h, pushBody(t, reviewedEvent(), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_VerifiesGooglePushesOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})

	assert.NotNil(t, h.verifyToken)
}
