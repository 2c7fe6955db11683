package postgres

import (
	"context"
	"log/slog"

	"photoverify/config"
	"photoverify/internal/domain/lifecycle"
	"photoverify/internal/infra/metrics"
	"photoverify/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const statsName = "photoverify"

type Params struct {
	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// New opens the primary and replica pools. The connection is verified, and the schema
// optionally migrated, when the fx app starts.
func New(params Params) (*gorm.DB, error) {
	cfg := params.Config
	if cfg.Postgres == nil {
		return nil, errors.New("postgres store selected but postgres is not configured")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Decisions rely on a single conditional UPDATE, so no write needs an implicit transaction.
		SkipDefaultTransaction: true,
		Logger:                 newGormLogger(params.Logger, cfg.Env.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	if err := params.Metrics.RegisterDBStats(sqlDB, statsName); err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if !cfg.Store.AutoMigrate {
				return nil
			}

			return Migrate(ctx, db)
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// Migrate creates or updates the tables of every relational model.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate relational store")
	}

	return nil
}
