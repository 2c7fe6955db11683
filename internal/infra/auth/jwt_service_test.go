package auth

import (
	"testing"
	"time"

	"photoverify/config"
	"photoverify/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{JWTSecret: secret, TokenTTL: time.Hour}})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t, "test_secret_key_very_long_for_testing")

	identity := &entity.Identity{
		UID:         "u1",
		Email:       "partner@example.com",
		Role:        entity.RolePartner,
		PartnerID:   "p1",
		LocationIDs: []string{"l1", "l2"},
	}

	token, expiresAt, err := svc.GenerateToken(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, identity, claims.Identity())
}

func TestJWTService_RejectsForeignAndExpiredTokens(t *testing.T) {
	svc := newTestJWTService(t, "test_secret_key_very_long_for_testing")
	other := newTestJWTService(t, "another_secret_key_very_long_for_testing")

	foreign, _, err := other.GenerateToken(&entity.Identity{UID: "u1", Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(foreign)
	assert.Error(t, err)

	_, err = svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)

	stale := newTestJWTService(t, "test_secret_key_very_long_for_testing")
	stale.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := stale.GenerateToken(&entity.Identity{UID: "u1", Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(expired)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})

	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
