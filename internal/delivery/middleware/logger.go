package middleware

import (
	"log/slog"
	"time"

	"photoverify/config"
	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const unmatchedRoute = "unmatched"

// LoggerMiddleware writes the access log and the HTTP metrics of one server.
// Successful requests are only logged in debug mode; 5xx responses always are.
type LoggerMiddleware struct {
	logger   *slog.Logger
	recorder *metrics.Recorder
	server   string
	debug    bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config, recorder *metrics.Recorder, server string) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:   logger,
		recorder: recorder,
		server:   server,
		debug:    cfg.Env.Debug,
	}
}

// Install registers the middleware every HTTP server of the project runs, outermost first.
func Install(e *echo.Echo, server string, logger *slog.Logger, cfg *config.Config, recorder *metrics.Recorder) {
	e.Use(echomiddleware.Recover())
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg, recorder, server).Handle)
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		// The error handler writes the status, so run it before observing.
		if err := next(c); err != nil {
			c.Error(err)
			m.observe(c, start, err)

			return nil
		}
		m.observe(c, start, nil)

		return nil
	}
}

func (m *LoggerMiddleware) observe(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := c.Response().Status
	latency := time.Since(start)

	route := c.Path()
	if route == "" {
		route = unmatchedRoute
	}
	m.recorder.ObserveHTTP(m.server, req.Method, route, status, latency)

	if !m.debug && status < 500 {
		return
	}

	attrs := []slog.Attr{
		slog.String("server", m.server),
		slog.String("method", req.Method),
		slog.String("route", route),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Int64("bytes_out", c.Response().Size),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if identity := deliverycontext.GetIdentity(c); identity != nil {
		attrs = append(attrs, slog.String("uid", identity.UID), slog.String("role", identity.Role.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP Request", attrs...)
}
