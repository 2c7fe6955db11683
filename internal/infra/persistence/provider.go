// Package persistence selects the backing store and provides its repositories.
package persistence

import (
	"context"
	"log/slog"

	"photoverify/config"
	"photoverify/internal/domain/constants"
	"photoverify/internal/domain/repository"
	"photoverify/internal/infra/metrics"
	"photoverify/internal/infra/persistence/firestore"
	"photoverify/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	App     *firebase.App     `optional:"true"`
	Metrics *metrics.Recorder `optional:"true"`
}

// Repositories are the repositories of the configured store
type Repositories struct {
	fx.Out

	Partners    repository.PartnerRepository
	Catalog     repository.CatalogRepository
	Submissions repository.SubmissionRepository
	Users       repository.UserProfileRepository
	Credentials repository.CredentialRepository
}

// NewRepositories builds every repository on top of the store named by store.provider
func NewRepositories(params Params) (Repositories, error) {
	switch params.Config.Store.Provider {
	case constants.StoreProviderPostgres:
		db, err := postgres.New(postgres.Params{
			Lc:      params.Lc,
			Config:  params.Config,
			Logger:  params.Logger,
			Metrics: params.Metrics,
		})
		if err != nil {
			return Repositories{}, err
		}

		params.Logger.Info("Using PostgreSQL store")

		return Repositories{
			Partners:    postgres.NewPartnerRepository(db),
			Catalog:     postgres.NewCatalogRepository(db),
			Submissions: postgres.NewSubmissionRepository(db),
			Users:       postgres.NewUserProfileRepository(db),
			Credentials: postgres.NewCredentialRepository(db),
		}, nil

	case constants.StoreProviderFirestore:
		if params.App == nil {
			return Repositories{}, errors.New("firestore store selected but firebase is not configured")
		}

		client, err := params.App.Firestore(params.Ctx)
		if err != nil {
			return Repositories{}, errors.Wrap(err, "failed to create Firestore client")
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		params.Logger.Info("Using Firestore store")

		return Repositories{
			Partners:    firestore.NewPartnerRepository(client),
			Catalog:     firestore.NewCatalogRepository(client),
			Submissions: firestore.NewSubmissionRepository(client),
			Users:       firestore.NewUserProfileRepository(client),
			Credentials: firestore.NewCredentialRepository(client),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store provider: %s", params.Config.Store.Provider)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
