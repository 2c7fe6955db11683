package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/domain/repository"
	"photoverify/internal/domain/service"
	"photoverify/internal/errors"
	"photoverify/internal/usecase"

	"go.uber.org/fx"
)

type sessionService struct {
	identity        service.IdentityProvider
	authenticator   service.PasswordAuthenticator
	userProfileRepo repository.UserProfileRepository
	logger          *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Identity        service.IdentityProvider
	Authenticator   service.PasswordAuthenticator `optional:"true"`
	UserProfileRepo repository.UserProfileRepository
	Logger          *slog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		identity:        params.Identity,
		authenticator:   params.Authenticator,
		userProfileRepo: params.UserProfileRepo,
		logger:          params.Logger,
	}
}

func (s *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Login signs in with email and password. Hosted identity providers sign users in on the client.
func (s *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if s.authenticator == nil {
		return nil, domainerrors.ErrLoginUnsupported
	}

	token, identity, err := s.authenticator.SignIn(ctx, normalizeEmail(input.Email), input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			s.log(ctx).Info("Login rejected", slog.String("email", normalizeEmail(input.Email)))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to sign in")
	}

	identity, err = s.applyProfile(ctx, identity)
	if err != nil {
		return nil, err
	}

	return &usecase.LoginOutput{Token: token, Identity: identity}, nil
}

// Authenticate verifies the bearer token and overlays the stored profile onto its claims
func (s *sessionService) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	identity, err := s.identity.VerifyToken(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid or expired token")
		}

		return nil, errors.Wrap(err, "failed to verify token")
	}

	return s.applyProfile(ctx, identity)
}

// applyProfile makes the stored profile authoritative over token claims.
func (s *sessionService) applyProfile(ctx context.Context, identity *entity.Identity) (*entity.Identity, error) {
	profile, err := s.userProfileRepo.FindUserProfileByID(ctx, identity.UID)
	if err != nil {
		if errors.Is(err, repository.ErrUserProfileNotFound) {
			return identity, nil
		}

		return nil, errors.Wrap(err, "failed to find user profile")
	}

	resolved := &entity.Identity{
		UID:   identity.UID,
		Email: identity.Email,
		Role:  profile.Role,
	}
	if resolved.Email == "" {
		resolved.Email = profile.Email
	}
	if profile.Role == entity.RolePartner {
		resolved.PartnerID = profile.PartnerID
		resolved.LocationIDs = profile.LocationIDs
	}

	return resolved, nil
}

// Me returns the caller with the stored profile
func (s *sessionService) Me(ctx context.Context, identity *entity.Identity) (*usecase.MeOutput, error) {
	if err := requireAuthenticated(identity); err != nil {
		return nil, err
	}

	output := &usecase.MeOutput{Identity: identity}
	profile, err := s.userProfileRepo.FindUserProfileByID(ctx, identity.UID)
	switch {
	case err == nil:
		output.Profile = profile
	case !errors.Is(err, repository.ErrUserProfileNotFound):
		return nil, errors.Wrap(err, "failed to find user profile")
	}

	return output, nil
}
