package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"photoverify/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)
	assert.NotEqual(t, generated, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(ctx, "req-1")))
}

func TestLogger(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	ctx := context.Background()
	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(ctx, scoped), fallback))
}

func TestIdentity(t *testing.T) {
	identity := &entity.Identity{UID: "u1", Role: entity.RoleReviewer}

	c := newEchoContext()
	assert.Nil(t, GetIdentity(c))
	SetIdentity(c, identity)
	assert.Same(t, identity, GetIdentity(c))

	ctx := context.Background()
	assert.Nil(t, GetIdentityFromContext(ctx))
	assert.Same(t, identity, GetIdentityFromContext(WithIdentity(ctx, identity)))
}
