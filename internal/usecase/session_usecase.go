package usecase

import (
	"context"
	"time"

	"photoverify/internal/domain/entity"
)

// LoginInput represents the input for a password login
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput is the issued token and the signed-in identity
type LoginOutput struct {
	Token     string           `json:"token"`
	ExpiresAt *time.Time       `json:"expires_at,omitempty"`
	Identity  *entity.Identity `json:"identity"`
}

// MeOutput is the caller's identity with the stored profile, if any
type MeOutput struct {
	Identity *entity.Identity    `json:"identity"`
	Profile  *entity.UserProfile `json:"profile,omitempty"`
}

// SessionUsecase defines authentication of callers.
type SessionUsecase interface {
	// Login signs a user in with email and password when the identity provider supports it.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate verifies a bearer token and resolves the caller. A stored profile takes
	// precedence over the token's claims.
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)

	// Me returns the caller with the stored profile.
	Me(ctx context.Context, identity *entity.Identity) (*MeOutput, error)
}
