// Package worker receives Pub/Sub pushes of submission events.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"photoverify/config"
	"photoverify/internal/delivery"
	"photoverify/internal/delivery/middleware"
	"photoverify/internal/delivery/worker/handler"
	"photoverify/internal/domain/lifecycle"
	"photoverify/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	serverName = "worker"
	// PushPath is the endpoint the Pub/Sub push subscription targets.
	PushPath = "/push"
)

type workerServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Recorder `optional:"true"`
	PushHandler *handler.PushHandler
}

// NewServer creates the HTTP server receiving submission events
func NewServer(params ServerParams) (delivery.Delivery, error) {
	cfg := params.Cfg

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	middleware.Install(e, serverName, params.Logger, cfg, params.Metrics)
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.Metrics != nil && cfg.Metrics.Enabled && params.Metrics != nil {
		e.GET(cfg.Metrics.Path, echo.WrapHandler(params.Metrics.Handler()))
	}
	e.POST(PushPath, params.PushHandler.HandlePush)

	srv := &workerServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port)),
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func (s *workerServer) Serve(context.Context) error {
	s.logger.Info("Starting Worker HTTP server", slog.String("host_port", s.addr))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
