package impl

import (
	"context"
	"testing"

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

type provisioningFixtures struct {
	service         *provisioningService
	partnerRepo     *mockRepo.MockPartnerRepository
	catalogRepo     *mockRepo.MockCatalogRepository
	userProfileRepo *mockRepo.MockUserProfileRepository
	identity        *mockSvc.MockIdentityProvider
}

func createTestProvisioningService(t *testing.T) provisioningFixtures {
	partnerRepo := mockRepo.NewMockPartnerRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	userProfileRepo := mockRepo.NewMockUserProfileRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)

	svc := NewProvisioningService(ProvisioningServiceParams{
		PartnerRepo:     partnerRepo,
		CatalogRepo:     catalogRepo,
		UserProfileRepo: userProfileRepo,
		Identity:        identity,
		Logger:          newDiscardLogger(),
	}).(*provisioningService)
	svc.now = fixedClock

	return provisioningFixtures{
		service:         svc,
		partnerRepo:     partnerRepo,
		catalogRepo:     catalogRepo,
		userProfileRepo: userProfileRepo,
		identity:        identity,
	}
}

func TestProvisioningService_Seed_EmptyStore(t *testing.T) {
	fx := createTestProvisioningService(t)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().FindBrandByID(ctx, constants.DefaultBrandID).Return(nil, repository.ErrBrandNotFound)
	fx.catalogRepo.EXPECT().SaveBrand(ctx, mock.AnythingOfType("*entity.Brand")).Return(nil)
	fx.catalogRepo.EXPECT().FindMenuItem(ctx, constants.DefaultBrandID, mock.Anything).Return(nil, repository.ErrMenuItemNotFound)

	var items []*entity.MenuItem
	fx.catalogRepo.EXPECT().SaveMenuItem(ctx, mock.Anything).
		Run(func(_ context.Context, item *entity.MenuItem) { items = append(items, item) }).
		Return(nil)
	var requirements []*entity.Requirement
	fx.catalogRepo.EXPECT().SaveRequirement(ctx, mock.Anything).
		Run(func(_ context.Context, requirement *entity.Requirement) { requirements = append(requirements, requirement) }).
		Return(nil)

	fx.partnerRepo.EXPECT().FindPartnerByID(ctx, seedPartnerID).Return(nil, repository.ErrPartnerNotFound)
	fx.partnerRepo.EXPECT().SavePartner(ctx, mock.AnythingOfType("*entity.Partner")).Return(nil)
	fx.partnerRepo.EXPECT().FindLocation(ctx, seedPartnerID, mock.Anything).Return(nil, repository.ErrLocationNotFound)
	fx.partnerRepo.EXPECT().SaveLocation(ctx, mock.MatchedBy(func(location *entity.Location) bool {
		return location.Coordinates != nil && location.CreatedAt.Equal(fixedNow)
	})).Return(nil).Times(2)

	result, err := fx.service.Seed(ctx)

	require.NoError(t, err)
	assert.Equal(t, &usecase.SeedResult{Brands: 1, MenuItems: 13, Requirements: 21, Partners: 1, Locations: 2}, result)

	require.Len(t, items, 13)
	assert.Equal(t, 1, items[0].Order)
	assert.Equal(t, 13, items[12].Order)
	for _, requirement := range requirements {
		assert.Equal(t, constants.DefaultBrandID, requirement.BrandID)
		assert.NotEmpty(t, requirement.ItemID)
	}
}

func TestProvisioningService_Seed_ExistingStoreWritesNothing(t *testing.T) {
	fx := createTestProvisioningService(t)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().FindBrandByID(ctx, constants.DefaultBrandID).Return(&entity.Brand{ID: constants.DefaultBrandID}, nil)
	fx.catalogRepo.EXPECT().FindMenuItem(ctx, constants.DefaultBrandID, mock.Anything).Return(&entity.MenuItem{}, nil)
	fx.partnerRepo.EXPECT().FindPartnerByID(ctx, seedPartnerID).Return(&entity.Partner{ID: seedPartnerID}, nil)
	fx.partnerRepo.EXPECT().FindLocation(ctx, seedPartnerID, mock.Anything).Return(&entity.Location{}, nil)

	result, err := fx.service.Seed(ctx)

	require.NoError(t, err)
	assert.Equal(t, &usecase.SeedResult{}, result)
}

func TestProvisioningService_SetClaims(t *testing.T) {
	fx := createTestProvisioningService(t)
	ctx := context.Background()
	claims := entity.Claims{Role: entity.RolePartner, PartnerID: "P", LocationIDs: []string{"L"}}

	fx.identity.EXPECT().FindUIDByEmail(ctx, "owner@example.com").Return("uid-1", nil)
	fx.identity.EXPECT().SetClaims(ctx, "uid-1", claims).Return(nil)
	fx.userProfileRepo.EXPECT().FindUserProfileByID(ctx, "uid-1").Return(nil, repository.ErrUserProfileNotFound)
	fx.userProfileRepo.EXPECT().SaveUserProfile(ctx, mock.MatchedBy(func(profile *entity.UserProfile) bool {
		return profile.ID == "uid-1" && profile.PartnerID == "P" && profile.Email == "owner@example.com"
	})).Return(nil)

	uid, err := fx.service.SetClaims(ctx, "Owner@Example.com", claims)

	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
}

func TestProvisioningService_SetClaims_Errors(t *testing.T) {
	t.Run("partner without partner id", func(t *testing.T) {
		fx := createTestProvisioningService(t)

		_, err := fx.service.SetClaims(context.Background(), "a@b.test", entity.Claims{Role: entity.RolePartner})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestProvisioningService(t)
		ctx := context.Background()

		fx.identity.EXPECT().FindUIDByEmail(ctx, "ghost@b.test").Return("", service.ErrIdentityNotFound)

		_, err := fx.service.SetClaims(ctx, "ghost@b.test", entity.Claims{Role: entity.RoleReviewer})

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}
