package auth

import (
	"context"
	"strings"

	"photoverify/internal/domain/entity"
	"photoverify/internal/domain/repository"
	"photoverify/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localIdentityProvider keeps identities in the credential store and issues its own JWTs.
type localIdentityProvider struct {
	credentials repository.CredentialRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
}

// NewLocalIdentityProvider is the constructor for localIdentityProvider.
func NewLocalIdentityProvider(
	credentials repository.CredentialRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
) *localIdentityProvider {
	return &localIdentityProvider{
		credentials: credentials,
		hasher:      hasher,
		tokens:      tokens,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// VerifyToken validates a locally issued JWT.
func (p *localIdentityProvider) VerifyToken(_ context.Context, token string) (*entity.Identity, error) {
	claims, err := p.tokens.ValidateToken(token)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	return claims.Identity(), nil
}

// CreateUser stores a new credential with a hashed password and returns its generated uid.
func (p *localIdentityProvider) CreateUser(ctx context.Context, email, password string) (string, error) {
	hash, err := p.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	credential := &entity.Credential{
		UID:          uuid.NewString(),
		Email:        normalizeEmail(email),
		PasswordHash: hash,
	}
	if err := p.credentials.CreateCredential(ctx, credential); err != nil {
		if errors.Is(err, repository.ErrDuplicateCredential) {
			return "", service.ErrIdentityAlreadyExists
		}

		return "", err
	}

	return credential.UID, nil
}

// SetClaims replaces the claims embedded in future tokens of the identity.
func (p *localIdentityProvider) SetClaims(ctx context.Context, uid string, claims entity.Claims) error {
	if err := p.credentials.UpdateCredentialClaims(ctx, uid, claims); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return service.ErrIdentityNotFound
		}

		return err
	}

	return nil
}

// DeleteUser removes the credential of the identity.
func (p *localIdentityProvider) DeleteUser(ctx context.Context, uid string) error {
	if err := p.credentials.DeleteCredential(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return service.ErrIdentityNotFound
		}

		return err
	}

	return nil
}

// FindUIDByEmail resolves the uid registered with the email.
func (p *localIdentityProvider) FindUIDByEmail(ctx context.Context, email string) (string, error) {
	credential, err := p.credentials.FindCredentialByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return "", service.ErrIdentityNotFound
		}

		return "", err
	}

	return credential.UID, nil
}

// SignIn checks the password against the stored hash and issues a token with the stored claims.
func (p *localIdentityProvider) SignIn(ctx context.Context, email, password string) (string, *entity.Identity, error) {
	credential, err := p.credentials.FindCredentialByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return "", nil, service.ErrInvalidCredentials
		}

		return "", nil, err
	}
	if !p.hasher.Check(password, credential.PasswordHash) {
		return "", nil, service.ErrInvalidCredentials
	}

	identity := &entity.Identity{
		UID:         credential.UID,
		Email:       credential.Email,
		Role:        credential.Claims.Role,
		PartnerID:   credential.Claims.PartnerID,
		LocationIDs: credential.Claims.LocationIDs,
	}

	token, _, err := p.tokens.GenerateToken(identity)
	if err != nil {
		return "", nil, err
	}

	return token, identity, nil
}
