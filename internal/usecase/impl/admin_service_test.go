package impl

import (
	"context"
	"testing"
	"time"

	"photoverify/internal/domain/constants"
	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/domain/repository"
	"photoverify/internal/domain/service"
	"photoverify/internal/errors"
	mockRepo "photoverify/internal/mocks/repository"
	mockSvc "photoverify/internal/mocks/service"
	"photoverify/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminFixtures struct {
	service         *adminService
	partnerRepo     *mockRepo.MockPartnerRepository
	catalogRepo     *mockRepo.MockCatalogRepository
	userProfileRepo *mockRepo.MockUserProfileRepository
	identity        *mockSvc.MockIdentityProvider
	passwords       *mockSvc.MockPasswordGenerator
}

func createTestAdminService(t *testing.T) adminFixtures {
	partnerRepo := mockRepo.NewMockPartnerRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	userProfileRepo := mockRepo.NewMockUserProfileRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)
	passwords := mockSvc.NewMockPasswordGenerator(t)

	svc := NewAdminService(AdminServiceParams{
		PartnerRepo:     partnerRepo,
		CatalogRepo:     catalogRepo,
		UserProfileRepo: userProfileRepo,
		Identity:        identity,
		Passwords:       passwords,
		Logger:          newDiscardLogger(),
	}).(*adminService)
	svc.now = fixedClock

	return adminFixtures{
		service:         svc,
		partnerRepo:     partnerRepo,
		catalogRepo:     catalogRepo,
		userProfileRepo: userProfileRepo,
		identity:        identity,
		passwords:       passwords,
	}
}

func partnerUserInput() *usecase.CreateUserInput {
	return &usecase.CreateUserInput{
		Email:       "  Owner@Example.COM ",
		Role:        entity.RolePartner,
		PartnerID:   "P",
		LocationIDs: []string{"L", " "},
	}
}

func expectPartnerTargetsExist(fx adminFixtures, ctx context.Context) {
	fx.partnerRepo.EXPECT().FindPartnerByID(ctx, "P").Return(&entity.Partner{ID: "P"}, nil)
	fx.partnerRepo.EXPECT().FindLocation(ctx, "P", "L").Return(&entity.Location{ID: "L", PartnerID: "P"}, nil)
}

func TestAdminService_CreateUser_Partner(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	expectPartnerTargetsExist(fx, ctx)
	fx.passwords.EXPECT().Generate().Return("Temp-Pass-123", nil)
	fx.identity.EXPECT().CreateUser(ctx, "owner@example.com", "Temp-Pass-123").Return("uid-1", nil)
	fx.identity.EXPECT().SetClaims(ctx, "uid-1", entity.Claims{
		Role:        entity.RolePartner,
		PartnerID:   "P",
		LocationIDs: []string{"L"},
	}).Return(nil)
	fx.userProfileRepo.EXPECT().SaveUserProfile(ctx, mock.MatchedBy(func(profile *entity.UserProfile) bool {
		return profile.ID == "uid-1" &&
			profile.Email == "owner@example.com" &&
			profile.Role == entity.RolePartner &&
			profile.PartnerID == "P" &&
			assert.ObjectsAreEqual([]string{"L"}, profile.LocationIDs) &&
			profile.CreatedAt.Equal(fixedNow)
	})).Return(nil)

	output, err := fx.service.CreateUser(ctx, adminIdentity(), partnerUserInput())

	require.NoError(t, err)
	assert.Equal(t, &usecase.CreateUserOutput{UID: "uid-1", TempPassword: "Temp-Pass-123"}, output)
}

func TestAdminService_CreateUser_Reviewer(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.passwords.EXPECT().Generate().Return("Temp-Pass-123", nil)
	fx.identity.EXPECT().CreateUser(ctx, "reviewer@example.com", "Temp-Pass-123").Return("uid-2", nil)
	fx.identity.EXPECT().SetClaims(ctx, "uid-2", entity.Claims{Role: entity.RoleReviewer}).Return(nil)
	fx.userProfileRepo.EXPECT().SaveUserProfile(ctx, mock.MatchedBy(func(profile *entity.UserProfile) bool {
		return profile.Role == entity.RoleReviewer && profile.PartnerID == "" && len(profile.LocationIDs) == 0
	})).Return(nil)

	output, err := fx.service.CreateUser(ctx, adminIdentity(), &usecase.CreateUserInput{
		Email:     "reviewer@example.com",
		Role:      entity.RoleReviewer,
		PartnerID: "ignored",
	})

	require.NoError(t, err)
	assert.Equal(t, "uid-2", output.UID)
}

func TestAdminService_CreateUser_InvalidArgumentsWriteNothing(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateUserInput
	}{
		{name: "missing email", input: &usecase.CreateUserInput{Role: entity.RoleReviewer}},
		{name: "malformed email", input: &usecase.CreateUserInput{Email: "not-an-email", Role: entity.RoleReviewer}},
		{name: "unknown role", input: &usecase.CreateUserInput{Email: "a@b.test", Role: "owner"}},
		{name: "partner without partner id", input: &usecase.CreateUserInput{Email: "a@b.test", Role: entity.RolePartner, LocationIDs: []string{"L"}}},
		{name: "partner without locations", input: &usecase.CreateUserInput{Email: "a@b.test", Role: entity.RolePartner, PartnerID: "P", LocationIDs: []string{}}},
		{name: "partner with blank locations", input: &usecase.CreateUserInput{Email: "a@b.test", Role: entity.RolePartner, PartnerID: "P", LocationIDs: []string{"", "  "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t)

			output, err := fx.service.CreateUser(context.Background(), adminIdentity(), tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument), "unexpected error: %v", err)
			assert.Nil(t, output)
		})
	}
}

func TestAdminService_CreateUser_UnknownLocation(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.partnerRepo.EXPECT().FindPartnerByID(ctx, "P").Return(&entity.Partner{ID: "P"}, nil)
	fx.partnerRepo.EXPECT().FindLocation(ctx, "P", "L").Return(nil, repository.ErrLocationNotFound)

	_, err := fx.service.CreateUser(ctx, adminIdentity(), partnerUserInput())

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestAdminService_CreateUser_RequiresAdmin(t *testing.T) {
	for _, caller := range []*entity.Identity{reviewerIdentity(), partnerIdentity("P", "L")} {
		fx := createTestAdminService(t)

		_, err := fx.service.CreateUser(context.Background(), caller, partnerUserInput())

		assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied), "role %s", caller.Role)
	}

	fx := createTestAdminService(t)
	_, err := fx.service.CreateUser(context.Background(), nil, partnerUserInput())
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAdminService_CreateUser_AlreadyExists(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	expectPartnerTargetsExist(fx, ctx)
	fx.passwords.EXPECT().Generate().Return("Temp-Pass-123", nil)
	fx.identity.EXPECT().CreateUser(ctx, "owner@example.com", "Temp-Pass-123").Return("", service.ErrIdentityAlreadyExists)

	_, err := fx.service.CreateUser(ctx, adminIdentity(), partnerUserInput())

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAdminService_CreateUser_RollsBackIdentity(t *testing.T) {
	t.Run("claims failure", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()

		expectPartnerTargetsExist(fx, ctx)
		fx.passwords.EXPECT().Generate().Return("Temp-Pass-123", nil)
		fx.identity.EXPECT().CreateUser(ctx, "owner@example.com", "Temp-Pass-123").Return("uid-1", nil)
		fx.identity.EXPECT().SetClaims(ctx, "uid-1", mock.Anything).Return(assert.AnError)
		fx.identity.EXPECT().DeleteUser(ctx, "uid-1").Return(nil).Once()

		output, err := fx.service.CreateUser(ctx, adminIdentity(), partnerUserInput())

		assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
		assert.Nil(t, output)
	})

	t.Run("profile failure", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()

		expectPartnerTargetsExist(fx, ctx)
		fx.passwords.EXPECT().Generate().Return("Temp-Pass-123", nil)
		fx.identity.EXPECT().CreateUser(ctx, "owner@example.com", "Temp-Pass-123").Return("uid-1", nil)
		fx.identity.EXPECT().SetClaims(ctx, "uid-1", mock.Anything).Return(nil)
		fx.userProfileRepo.EXPECT().SaveUserProfile(ctx, mock.Anything).Return(assert.AnError)
		fx.identity.EXPECT().DeleteUser(ctx, "uid-1").Return(assert.AnError).Once()

		output, err := fx.service.CreateUser(ctx, adminIdentity(), partnerUserInput())

		assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
		assert.Nil(t, output)
	})
}

func TestAdminService_CreatePartner_Defaults(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.partnerRepo.EXPECT().SavePartner(ctx, mock.AnythingOfType("*entity.Partner")).Return(nil)

	partner, err := fx.service.CreatePartner(ctx, adminIdentity(), &usecase.CreatePartnerInput{
		ID:   "justfood",
		Name: "Just Food GmbH",
	})

	require.NoError(t, err)
	assert.Equal(t, "Just Food GmbH", partner.ShortName)
	assert.Equal(t, []string{constants.DefaultBrandID}, partner.Brands)
	assert.True(t, partner.IsActive)
	assert.Equal(t, fixedNow, partner.CreatedAt)
}

func TestAdminService_CreateLocation(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	lat, lng := 52.52, 13.3889
	inactive := false

	fx.partnerRepo.EXPECT().FindPartnerByID(ctx, "P").Return(&entity.Partner{ID: "P"}, nil)
	fx.partnerRepo.EXPECT().SaveLocation(ctx, mock.AnythingOfType("*entity.Location")).Return(nil)

	location, err := fx.service.CreateLocation(ctx, adminIdentity(), &usecase.CreateLocationInput{
		PartnerID: "P",
		ID:        "berlin-mitte",
		Name:      "Berlin Mitte",
		IsActive:  &inactive,
		Latitude:  &lat,
		Longitude: &lng,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{constants.DefaultBrandID}, location.BrandIDs)
	assert.False(t, location.IsActive)
	assert.Equal(t, &entity.GeoPoint{Latitude: lat, Longitude: lng}, location.Coordinates)
}

func TestAdminService_CreateLocation_Errors(t *testing.T) {
	t.Run("unknown partner", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()

		fx.partnerRepo.EXPECT().FindPartnerByID(ctx, "P").Return(nil, repository.ErrPartnerNotFound)

		_, err := fx.service.CreateLocation(ctx, adminIdentity(), &usecase.CreateLocationInput{PartnerID: "P", ID: "L", Name: "L"})

		assert.True(t, errors.Is(err, domainerrors.ErrPartnerNotFound))
	})

	t.Run("half a coordinate", func(t *testing.T) {
		fx := createTestAdminService(t)
		lat := 1.0

		_, err := fx.service.CreateLocation(context.Background(), adminIdentity(), &usecase.CreateLocationInput{
			PartnerID: "P",
			ID:        "L",
			Name:      "L",
			Latitude:  &lat,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	})
}

func TestAdminService_UpsertUserProfile_KeepsCreatedAt(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	created := fixedNow.Add(-72 * time.Hour)

	fx.userProfileRepo.EXPECT().FindUserProfileByID(ctx, "uid-1").
		Return(&entity.UserProfile{ID: "uid-1", CreatedAt: created}, nil)
	fx.userProfileRepo.EXPECT().SaveUserProfile(ctx, mock.Anything).Return(nil)

	profile, err := fx.service.UpsertUserProfile(ctx, adminIdentity(), &usecase.UpsertUserProfileInput{
		UID:  "uid-1",
		Role: entity.RoleReviewer,
	})

	require.NoError(t, err)
	assert.Equal(t, created, profile.CreatedAt)
	assert.Equal(t, fixedNow, profile.UpdatedAt)
	assert.Equal(t, []string{constants.DefaultBrandID}, profile.Brands)
}

func TestAdminService_UpsertUserProfile_PartnerNeedsPartnerID(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.UpsertUserProfile(context.Background(), adminIdentity(), &usecase.UpsertUserProfileInput{
		UID:  "uid-1",
		Role: entity.RolePartner,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestAdminService_ListPartnersWithLocations(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.partnerRepo.EXPECT().ListPartners(ctx).Return([]*entity.Partner{{ID: "P"}, {ID: "Q"}}, nil)
	fx.partnerRepo.EXPECT().ListLocationsByPartner(ctx, "P").Return([]*entity.Location{{ID: "L", PartnerID: "P"}}, nil)
	fx.partnerRepo.EXPECT().ListLocationsByPartner(ctx, "Q").Return([]*entity.Location{}, nil)

	result, err := fx.service.ListPartnersWithLocations(ctx, adminIdentity())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Len(t, result[0].Locations, 1)
	assert.Empty(t, result[1].Locations)
}

func TestAdminService_CreateMenuItem_UnknownBrand(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().FindBrandByID(ctx, "B").Return(nil, repository.ErrBrandNotFound)

	_, err := fx.service.CreateMenuItem(ctx, adminIdentity(), &usecase.CreateMenuItemInput{
		BrandID:  "B",
		ID:       "burger",
		Name:     "Burger",
		Category: entity.CategoryBurgers,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrBrandNotFound))
}

func TestAdminService_CreateRequirement(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().FindMenuItem(ctx, "B", "burger").Return(menuItem("B", "burger", entity.CategoryBurgers, true), nil)
	fx.catalogRepo.EXPECT().SaveRequirement(ctx, mock.AnythingOfType("*entity.Requirement")).Return(nil)

	requirement, err := fx.service.CreateRequirement(ctx, adminIdentity(), &usecase.CreateRequirementInput{
		BrandID:   "B",
		ItemID:    "burger",
		ID:        "built-straight",
		Title:     "BUILT, STRAIGHT",
		Checklist: []string{"Bun centered", " "},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Bun centered"}, requirement.Checklist)
}
