// Package context carries request-scoped values between the echo layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"photoverify/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a request ID is read from and echoed back on.
const HeaderXRequestID = "X-Request-Id"

// Keys used with echo.Context.Set.
const (
	echoKeyRequestID = "request_id"
	echoKeyIdentity  = "identity"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	identityKey
)

// SetRequestID stores the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestID returns the request ID of c, or a fresh UUID when none was assigned.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request ID.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetIdentity stores the authenticated caller on the echo context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(echoKeyIdentity, identity)
}

// GetIdentity returns the authenticated caller, or nil on public routes.
func GetIdentity(c echo.Context) *entity.Identity {
	identity, _ := c.Get(echoKeyIdentity).(*entity.Identity)

	return identity
}

func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func GetIdentityFromContext(ctx context.Context) *entity.Identity {
	identity, _ := ctx.Value(identityKey).(*entity.Identity)

	return identity
}
