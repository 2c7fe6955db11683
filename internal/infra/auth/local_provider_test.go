package auth

import (
	"context"
	"testing"
	"time"

	"photoverify/config"
	"photoverify/internal/domain/entity"
	"photoverify/internal/domain/repository"
	"photoverify/internal/domain/service"
	mockRepo "photoverify/internal/mocks/repository"
	mockSvc "photoverify/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func createTestLocalProvider(t *testing.T) (*localIdentityProvider, *mockRepo.MockCredentialRepository) {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{
		JWTSecret:  "test_secret_key_very_long_for_testing",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}}
	tokens, err := NewJWTService(cfg)
	require.NoError(t, err)

	credentials := mockRepo.NewMockCredentialRepository(t)

	return NewLocalIdentityProvider(credentials, NewBcryptHasher(cfg), tokens), credentials
}

func TestLocalIdentityProvider_CreateUserNormalizesEmail(t *testing.T) {
	provider, credentials := createTestLocalProvider(t)
	ctx := context.Background()

	credentials.EXPECT().
		CreateCredential(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
			return c.Email == "partner@example.com" && c.UID != "" && c.PasswordHash != "secret-pw"
		})).
		Return(nil)

	uid, err := provider.CreateUser(ctx, "  Partner@Example.com ", "secret-pw")
	require.NoError(t, err)
	assert.NotEmpty(t, uid)
}

func TestLocalIdentityProvider_CreateUserDuplicate(t *testing.T) {
	provider, credentials := createTestLocalProvider(t)
	ctx := context.Background()

	credentials.EXPECT().
		CreateCredential(ctx, mock.AnythingOfType("*entity.Credential")).
		Return(repository.ErrDuplicateCredential)

	_, err := provider.CreateUser(ctx, "partner@example.com", "secret-pw")
	assert.ErrorIs(t, err, service.ErrIdentityAlreadyExists)
}

func TestLocalIdentityProvider_SignInAndVerify(t *testing.T) {
	provider, credentials := createTestLocalProvider(t)
	ctx := context.Background()

	hash, err := provider.hasher.Hash("secret-pw")
	require.NoError(t, err)

	credentials.EXPECT().
		FindCredentialByEmail(ctx, "reviewer@example.com").
		Return(&entity.Credential{
			UID:          "u1",
			Email:        "reviewer@example.com",
			PasswordHash: hash,
			Claims:       entity.Claims{Role: entity.RoleReviewer},
		}, nil).
		Times(2)

	token, identity, err := provider.SignIn(ctx, "Reviewer@example.com", "secret-pw")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleReviewer, identity.Role)

	verified, err := provider.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", verified.UID)
	assert.Equal(t, entity.RoleReviewer, verified.Role)

	_, _, err = provider.SignIn(ctx, "reviewer@example.com", "wrong-pw")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLocalIdentityProvider_UnknownEmail(t *testing.T) {
	provider, credentials := createTestLocalProvider(t)
	ctx := context.Background()

	credentials.EXPECT().
		FindCredentialByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrCredentialNotFound).
		Times(2)

	_, _, err := provider.SignIn(ctx, "ghost@example.com", "pw")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = provider.FindUIDByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, service.ErrIdentityNotFound)
}

func TestLocalIdentityProvider_VerifyRejectsGarbage(t *testing.T) {
	provider, _ := createTestLocalProvider(t)

	_, err := provider.VerifyToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

type localProviderMocks struct {
	credentials *mockRepo.MockCredentialRepository
	hasher      *mockSvc.MockPasswordHasher
	tokens      *mockSvc.MockTokenService
}

func createMockedLocalProvider(t *testing.T) (*localIdentityProvider, localProviderMocks) {
	t.Helper()

	mocks := localProviderMocks{
		credentials: mockRepo.NewMockCredentialRepository(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		tokens:      mockSvc.NewMockTokenService(t),
	}

	return NewLocalIdentityProvider(mocks.credentials, mocks.hasher, mocks.tokens), mocks
}

func TestLocalIdentityProvider_SignInIssuesTokenWithStoredClaims(t *testing.T) {
	provider, mocks := createMockedLocalProvider(t)
	ctx := context.Background()
	expiresAt := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

	mocks.credentials.EXPECT().FindCredentialByEmail(ctx, "partner@example.com").Return(&entity.Credential{
		UID:          "u1",
		Email:        "partner@example.com",
		PasswordHash: "stored-hash",
		Claims:       entity.Claims{Role: entity.RolePartner, PartnerID: "P", LocationIDs: []string{"L"}},
	}, nil)
	mocks.hasher.EXPECT().Check("secret-pw", "stored-hash").Return(true)
	mocks.tokens.EXPECT().GenerateToken(mock.MatchedBy(func(identity *entity.Identity) bool {
		return identity.UID == "u1" && identity.PartnerID == "P" && assert.ObjectsAreEqual([]string{"L"}, identity.LocationIDs)
	})).Return("signed-token", expiresAt, nil)

	token, identity, err := provider.SignIn(ctx, "partner@example.com", "secret-pw")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, entity.RolePartner, identity.Role)
}

func TestLocalIdentityProvider_SignInWrongPasswordIssuesNoToken(t *testing.T) {
	provider, mocks := createMockedLocalProvider(t)
	ctx := context.Background()

	mocks.credentials.EXPECT().FindCredentialByEmail(ctx, "partner@example.com").
		Return(&entity.Credential{UID: "u1", PasswordHash: "stored-hash"}, nil)
	mocks.hasher.EXPECT().Check("wrong-pw", "stored-hash").Return(false)

	_, _, err := provider.SignIn(ctx, "partner@example.com", "wrong-pw")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	mocks.tokens.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestLocalIdentityProvider_CreateUserHashFailure(t *testing.T) {
	provider, mocks := createMockedLocalProvider(t)

	mocks.hasher.EXPECT().Hash("secret-pw").Return("", assert.AnError)

	_, err := provider.CreateUser(context.Background(), "partner@example.com", "secret-pw")

	assert.ErrorIs(t, err, assert.AnError)
	mocks.credentials.AssertNotCalled(t, "CreateCredential", mock.Anything, mock.Anything)
}

func TestLocalIdentityProvider_VerifyTokenUsesClaims(t *testing.T) {
	provider, mocks := createMockedLocalProvider(t)
	ctx := context.Background()

	claims := &service.TokenClaims{Email: "reviewer@example.com", Role: string(entity.RoleReviewer)}
	claims.Subject = "u2"
	mocks.tokens.EXPECT().ValidateToken("good-token").Return(claims, nil)
	mocks.tokens.EXPECT().ValidateToken("expired-token").Return(nil, assert.AnError)

	identity, err := provider.VerifyToken(ctx, "good-token")
	require.NoError(t, err)
	assert.Equal(t, "u2", identity.UID)
	assert.Equal(t, entity.RoleReviewer, identity.Role)

	_, err = provider.VerifyToken(ctx, "expired-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
