package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"photoverify/config"
	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/domain/entity"
	"photoverify/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		reused bool
	}{
		{name: "client id reused", header: "req-abc-123", reused: true},
		{name: "missing id generated", header: "", reused: false},
		{name: "id with spaces replaced", header: "req abc", reused: false},
		{name: "oversized id replaced", header: strings.Repeat("a", maxRequestIDLength+1), reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process)

			var fromCtx string
			var hasLogger bool
			e.GET("/", func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			echoed := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, echoed)
			assert.Equal(t, echoed, fromCtx)
			assert.True(t, hasLogger)
			if tt.reused {
				assert.Equal(t, tt.header, echoed)
			} else {
				assert.NotEqual(t, tt.header, echoed)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	registry := prometheus.NewRegistry()
	recorder := metrics.NewRecorderWithRegistry(registry, registry)

	e := echo.New()
	Install(e, "api", logger, &config.Config{}, recorder)
	e.GET("/ok", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/fail/:id", func(c echo.Context) error {
		deliverycontext.SetIdentity(c, &entity.Identity{UID: "u1", Role: entity.RoleAdmin})

		return echo.NewHTTPError(http.StatusBadGateway, "upstream")
	})
	e.GET("/panic", func(echo.Context) error {
		panic("boom")
	})

	serve := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		return rec
	}

	assert.Equal(t, http.StatusNoContent, serve("/ok").Code)
	assert.Empty(t, logs.String(), "successful requests are not logged outside debug")

	assert.Equal(t, http.StatusBadGateway, serve("/fail/42").Code)
	assert.Contains(t, logs.String(), "route=/fail/:id")
	assert.Contains(t, logs.String(), "status=502")
	assert.Contains(t, logs.String(), "uid=u1")

	assert.Equal(t, http.StatusInternalServerError, serve("/panic").Code)

	assert.Equal(t, http.StatusNotFound, serve("/missing").Code)

	body := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(body, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, body.Body.String(), `photoverify_http_requests_total{method="GET",route="/ok",server="api",status="204"} 1`)
	assert.Contains(t, body.Body.String(), `photoverify_http_requests_total{method="GET",route="/fail/:id",server="api",status="502"} 1`)
}
