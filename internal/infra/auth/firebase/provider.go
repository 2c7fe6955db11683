// Package firebase verifies and manages identities with Firebase Authentication.
package firebase

import (
	"context"

	"photoverify/internal/domain/entity"
	"photoverify/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// authClient is the subset of *auth.Client used by the provider.
type authClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]any) error
	DeleteUser(ctx context.Context, uid string) error
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
}

// identityProvider implements service.IdentityProvider with Firebase Authentication.
type identityProvider struct {
	client authClient
}

// NewIdentityProvider wraps a Firebase Auth client.
func NewIdentityProvider(client *auth.Client) service.IdentityProvider {
	return &identityProvider{client: client}
}

// VerifyToken verifies a Firebase ID token and reads the custom claims it carries.
func (p *identityProvider) VerifyToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	claims := entity.ClaimsFromMap(token.Claims)
	email, _ := token.Claims["email"].(string)

	return &entity.Identity{
		UID:         token.UID,
		Email:       email,
		Role:        claims.Role,
		PartnerID:   claims.PartnerID,
		LocationIDs: claims.LocationIDs,
	}, nil
}

// CreateUser creates an email/password user and returns its uid.
func (p *identityProvider) CreateUser(ctx context.Context, email, password string) (string, error) {
	record, err := p.client.CreateUser(ctx, (&auth.UserToCreate{}).Email(email).Password(password))
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", service.ErrIdentityAlreadyExists
		}

		return "", errors.Wrap(err, "failed to create firebase user")
	}

	return record.UID, nil
}

// SetClaims replaces the custom claims of the user.
func (p *identityProvider) SetClaims(ctx context.Context, uid string, claims entity.Claims) error {
	if err := p.client.SetCustomUserClaims(ctx, uid, claims.ToMap()); err != nil {
		if auth.IsUserNotFound(err) {
			return service.ErrIdentityNotFound
		}

		return errors.Wrap(err, "failed to set custom claims")
	}

	return nil
}

// DeleteUser removes the user.
func (p *identityProvider) DeleteUser(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return service.ErrIdentityNotFound
		}

		return errors.Wrap(err, "failed to delete firebase user")
	}

	return nil
}

// FindUIDByEmail looks the user up by email.
func (p *identityProvider) FindUIDByEmail(ctx context.Context, email string) (string, error) {
	record, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return "", service.ErrIdentityNotFound
		}

		return "", errors.Wrap(err, "failed to look up firebase user")
	}

	return record.UID, nil
}
