package main

import (
	"context"
	"time"

	"photoverify/config"
	"photoverify/internal/infra/auth"
	"photoverify/internal/infra/firebase"
	logs "photoverify/internal/infra/log"
	"photoverify/internal/infra/persistence"
	"photoverify/internal/usecase"
	"photoverify/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const startTimeout = 30 * time.Second

// withProvisioning starts the store and identity provider, runs fn and stops them again.
func withProvisioning(ctx context.Context, fn func(usecase.ProvisioningUsecase) error) error {
	var provisioningUC usecase.ProvisioningUsecase

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			firebase.NewApp,
		),
		persistence.Module,
		auth.Module,
		fx.Provide(impl.NewProvisioningService),
		fx.Populate(&provisioningUC),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build admin app")
	}

	startCtx, cancel := context.WithTimeout(ctx, startTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start admin app")
	}

	runErr := fn(provisioningUC)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), startTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop admin app")
	}

	return runErr
}
