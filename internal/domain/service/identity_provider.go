package service

import (
	"context"

	"photoverify/internal/domain/entity"

	"github.com/pkg/errors"
)

// Identity provider errors.
var (
	// ErrIdentityAlreadyExists is returned when an identity with the email already exists.
	ErrIdentityAlreadyExists = errors.New("identity already exists")
	// ErrIdentityNotFound is returned when no identity matches.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrInvalidToken is returned when a bearer token cannot be verified.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrInvalidCredentials is returned when an email and password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// IdentityProvider is the authentication backend issuing identities with custom claims.
type IdentityProvider interface {
	// VerifyToken verifies a bearer token and returns the identity it carries.
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)

	// CreateUser creates an identity with an email and an initial password and returns its uid.
	CreateUser(ctx context.Context, email, password string) (string, error)

	// SetClaims replaces the custom claims of an identity.
	SetClaims(ctx context.Context, uid string, claims entity.Claims) error

	// DeleteUser removes an identity.
	DeleteUser(ctx context.Context, uid string) error

	// FindUIDByEmail resolves the uid of the identity registered with the email.
	FindUIDByEmail(ctx context.Context, email string) (string, error)
}

// PasswordAuthenticator signs identities in with email and password. Only providers that
// own credentials implement it.
type PasswordAuthenticator interface {
	// SignIn checks the credentials and issues a bearer token.
	SignIn(ctx context.Context, email, password string) (token string, identity *entity.Identity, err error)
}
