package cache

import (
	"context"
	"log/slog"

	"photoverify/config"
	"photoverify/internal/domain/lifecycle"
	"photoverify/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the IdempotencyStore, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewIdempotencyStore uses Redis when configured and process memory otherwise
func NewIdempotencyStore(params Params) service.IdempotencyStore {
	cfg := params.Config.Redis

	var store service.IdempotencyStore
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, using in-memory idempotency store")

		store = NewInMemoryIdempotencyStore()
	} else {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		params.Logger.Info("Using Redis idempotency store", slog.String("addr", cfg.Addr))

		store = NewRedisIdempotencyStore(client, cfg.KeyPrefix)

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to connect to Redis")
			},
		})
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store
}
