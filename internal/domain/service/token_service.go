package service

import (
	"time"

	"photoverify/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims defines the custom claims of locally issued tokens.
type TokenClaims struct {
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	PartnerID   string   `json:"partnerId,omitempty"`
	LocationIDs []string `json:"locationIds,omitempty"`
	jwt.RegisteredClaims
}

// Identity converts the token claims into the caller identity.
func (c *TokenClaims) Identity() *entity.Identity {
	return &entity.Identity{
		UID:         c.Subject,
		Email:       c.Email,
		Role:        entity.Role(c.Role),
		PartnerID:   c.PartnerID,
		LocationIDs: c.LocationIDs,
	}
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateToken creates a signed access token for an identity.
	GenerateToken(identity *entity.Identity) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*TokenClaims, error)
}
