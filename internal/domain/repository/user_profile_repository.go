package repository

import (
	"context"

	"photoverify/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserProfileNotFound is returned when a user profile is not found.
	ErrUserProfileNotFound = errors.New("user profile not found")
	// ErrCredentialNotFound is returned when no local credential matches.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrDuplicateCredential is returned when a local credential already exists for the email.
	ErrDuplicateCredential = errors.New("credential already exists")
)

// UserProfileRepository stores the authorization profile of each identity.
type UserProfileRepository interface {
	// SaveUserProfile creates the profile or merges it into the existing record.
	SaveUserProfile(ctx context.Context, profile *entity.UserProfile) error

	// FindUserProfileByID retrieves the profile of an identity.
	FindUserProfileByID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// ListUserProfiles retrieves every profile ordered by email.
	ListUserProfiles(ctx context.Context) ([]*entity.UserProfile, error)
}

// CredentialRepository stores locally managed logins.
type CredentialRepository interface {
	// CreateCredential persists a new credential.
	CreateCredential(ctx context.Context, credential *entity.Credential) error

	// FindCredentialByEmail retrieves a credential by its normalized email.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// FindCredentialByUID retrieves a credential by its identity id.
	FindCredentialByUID(ctx context.Context, uid string) (*entity.Credential, error)

	// UpdateCredentialClaims replaces the claims of a credential.
	UpdateCredentialClaims(ctx context.Context, uid string, claims entity.Claims) error

	// DeleteCredential removes a credential.
	DeleteCredential(ctx context.Context, uid string) error
}
