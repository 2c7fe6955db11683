package auth

import (
	"context"
	"log/slog"

	"photoverify/config"
	"photoverify/internal/domain/constants"
	"photoverify/internal/domain/repository"
	"photoverify/internal/domain/service"
	firebaseauth "photoverify/internal/infra/auth/firebase"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the identity provider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	App         *firebase.App `optional:"true"`
	Credentials repository.CredentialRepository
	Hasher      service.PasswordHasher
}

// ProviderResult exposes the identity provider and, for the local provider, password sign-in
type ProviderResult struct {
	fx.Out

	Identity      service.IdentityProvider
	Authenticator service.PasswordAuthenticator
}

// NewIdentityProvider creates the identity provider named by auth.provider
func NewIdentityProvider(params ProviderParams) (ProviderResult, error) {
	switch params.Config.Auth.Provider {
	case constants.AuthProviderFirebase:
		if params.App == nil {
			return ProviderResult{}, errors.New("firebase auth selected but firebase is not configured")
		}

		client, err := params.App.Auth(params.Ctx)
		if err != nil {
			return ProviderResult{}, errors.Wrap(err, "failed to create Firebase Auth client")
		}

		params.Logger.Info("Using Firebase identity provider")

		return ProviderResult{Identity: firebaseauth.NewIdentityProvider(client)}, nil

	case constants.AuthProviderLocal:
		tokens, err := NewJWTService(params.Config)
		if err != nil {
			return ProviderResult{}, err
		}

		params.Logger.Info("Using local identity provider")

		local := NewLocalIdentityProvider(params.Credentials, params.Hasher, tokens)

		return ProviderResult{Identity: local, Authenticator: local}, nil

	default:
		return ProviderResult{}, errors.Errorf("unknown auth provider: %s", params.Config.Auth.Provider)
	}
}

// Module provides the authentication FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewBcryptHasher,
		NewPasswordGenerator,
		NewIdentityProvider,
	),
)
