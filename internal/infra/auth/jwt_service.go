// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"photoverify/config"
	"photoverify/internal/domain/entity"
	"photoverify/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const tokenIssuer = "photoverify"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    cfg.Auth.TokenTTL,
		now:    time.Now,
	}, nil
}

// GenerateToken creates a signed access token carrying the identity's claims.
func (s *jwtService) GenerateToken(identity *entity.Identity) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := &service.TokenClaims{
		Email:       identity.Email,
		Role:        identity.Role.String(),
		PartnerID:   identity.PartnerID,
		LocationIDs: identity.LocationIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   identity.UID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// ValidateToken checks the signature, issuer and expiry of a token and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.TokenClaims, error) {
	claims := &service.TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}
