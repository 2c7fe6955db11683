// Package api serves the verification REST API.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"photoverify/config"
	"photoverify/internal/delivery"
	apimiddleware "photoverify/internal/delivery/api/middleware"
	"photoverify/internal/delivery/api/router"
	"photoverify/internal/delivery/api/validator"
	"photoverify/internal/delivery/middleware"
	"photoverify/internal/domain/lifecycle"
	"photoverify/internal/errors"
	"photoverify/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const serverName = "api"

type apiServer struct {
	addr        string
	idleTimeout time.Duration
	logger      *slog.Logger
	echo        *echo.Echo
}

// ServerParams holds dependencies for the API server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Recorder `optional:"true"`
	RouterParams router.RouterParams
}

// NewServer builds the API server and registers its routes
func NewServer(params ServerParams) (delivery.Delivery, error) {
	cfg := params.Cfg

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	middleware.Install(e, serverName, params.Logger, cfg, params.Metrics)
	e.Use(echomiddleware.CORS())
	// Photo uploads carry their own, larger limit on the upload route.
	e.Use(echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Method == http.MethodPost && c.Path() == router.UploadPath
		},
		Limit: cfg.HTTP.MaxRequestBodySize,
	}))

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		addr:        net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port)),
		idleTimeout: cfg.HTTP.Timeouts.IdleTimeout,
		logger:      params.Logger,
		echo:        e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// Serve blocks until the server is shut down. HTTP/2 is accepted over cleartext.
func (s *apiServer) Serve(context.Context) error {
	s.logger.Info("Starting API HTTP server", slog.String("host_port", s.addr))

	err := s.echo.StartH2CServer(s.addr, &http2.Server{IdleTimeout: s.idleTimeout})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
