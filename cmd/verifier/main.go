package main

import (
	"context"
	"log/slog"
	"os"

	"photoverify/config"
	"photoverify/internal/delivery"
	"photoverify/internal/delivery/api"
	"photoverify/internal/delivery/api/middleware"
	"photoverify/internal/delivery/api/router/handler"
	"photoverify/internal/infra/auth"
	"photoverify/internal/infra/cache"
	"photoverify/internal/infra/firebase"
	logs "photoverify/internal/infra/log"
	"photoverify/internal/infra/metrics"
	"photoverify/internal/infra/persistence"
	"photoverify/internal/infra/pubsub"
	"photoverify/internal/infra/qrcode"
	"photoverify/internal/infra/storage"
	"photoverify/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		persistence.Module,
		auth.Module,
		pubsub.Module,
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		metrics.NewRecorder,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			storage.NewBlobStorage,
			cache.NewIdempotencyStore,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProgressService,
			impl.NewSubmissionService,
			impl.NewReviewService,
			impl.NewLocationService,
			impl.NewCatalogService,
			impl.NewAdminService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewLocationHandler,
			handler.NewCatalogHandler,
			handler.NewSubmissionHandler,
			handler.NewReviewHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
