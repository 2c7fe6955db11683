package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"photoverify/internal/domain/constants"
	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/domain/repository"
	"photoverify/internal/domain/service"
	"photoverify/internal/errors"
	"photoverify/internal/usecase"

	"go.uber.org/fx"
)

const (
	seedPartnerID        = "p_justfood_gmbh"
	seedPlaceholderImage = "https://images.unsplash.com/photo-1"
)

type seedItem struct {
	id       string
	name     string
	category entity.Category
}

var seedMenu = []seedItem{
	{id: "double-cheese-burger", name: "Double Cheese Burger", category: entity.CategoryBurgers},
	{id: "double-chilli-cheese", name: "Double Chilli & Cheese Burger", category: entity.CategoryBurgers},
	{id: "oklahoma-smashed-burger", name: "Oklahoma Smashed Burger", category: entity.CategoryBurgers},
	{id: "veggie-burger", name: "Veggie Burger", category: entity.CategoryBurgers},
	{id: "bbq-lovers", name: "BBQ Lovers", category: entity.CategoryBurgers},
	{id: "double-cheese-bacon", name: "Double Cheese & Bacon Burger", category: entity.CategoryBurgers},
	{id: "crunchy-chikn-burger", name: "Crunchy Chik’n Burger", category: entity.CategoryBurgers},
	{id: "spicy-fried-chicken", name: "Spicy Fried Chicken", category: entity.CategoryBurgers},
	{id: "fries-chikn", name: "Loaded Fries Chik’n", category: entity.CategoryFries},
	{id: "fries-beef", name: "Loaded Fries Beef", category: entity.CategoryFries},
	{id: "smoky-sesame-wings", name: "Smoky Sesame Wings", category: entity.CategoryWings},
	{id: "sweet-heat-wings", name: "Sweet Heat Wings", category: entity.CategoryWings},
	{id: "trueffel-fries-deluxe", name: "Trüffel Fries Deluxe", category: entity.CategoryFries},
}

func seedRequirements(item seedItem) []*entity.Requirement {
	if item.category == entity.CategoryBurgers {
		return []*entity.Requirement{
			{
				ID:              "built-straight",
				Title:           "BUILT BURGER",
				AngleHint:       "PICTURE ANGLE: STRAIGHT ON",
				ExampleImageURL: seedPlaceholderImage,
				Checklist:       []string{"Split top bun", "Thin smashed patty covers bottom bun", "Melted cheese"},
			},
			{
				ID:              "cut-in-half",
				Title:           "BUILT BURGER, CUT IN HALF",
				AngleHint:       "PICTURE ANGLE: STRAIGHT ON",
				ExampleImageURL: seedPlaceholderImage,
				Checklist:       []string{},
			},
		}
	}

	return []*entity.Requirement{
		{
			ID:              "portion-top",
			Title:           "PORTION, TOP VIEW",
			AngleHint:       "PICTURE ANGLE: TOP DOWN",
			ExampleImageURL: seedPlaceholderImage,
			Checklist:       []string{"Garnish visible", "Clean plating"},
		},
	}
}

func seedLocations() []*entity.Location {
	return []*entity.Location{
		{
			ID:          "loc_berlin_mitte",
			PartnerID:   seedPartnerID,
			Name:        "JustFood Berlin-Mitte",
			Address:     "Friedrichstr. 10, Berlin",
			City:        "Berlin",
			Country:     "DE",
			BrandIDs:    []string{constants.DefaultBrandID},
			IsActive:    true,
			Coordinates: &entity.GeoPoint{Latitude: 52.5200, Longitude: 13.3889},
		},
		{
			ID:          "loc_munich_center",
			PartnerID:   seedPartnerID,
			Name:        "JustFood München-Center",
			Address:     "Leopoldstr. 25, München",
			City:        "München",
			Country:     "DE",
			BrandIDs:    []string{constants.DefaultBrandID},
			IsActive:    true,
			Coordinates: &entity.GeoPoint{Latitude: 48.1595, Longitude: 11.5853},
		},
	}
}

type provisioningService struct {
	partnerRepo     repository.PartnerRepository
	catalogRepo     repository.CatalogRepository
	userProfileRepo repository.UserProfileRepository
	identity        service.IdentityProvider
	now             func() time.Time
	logger          *slog.Logger
}

// ProvisioningServiceParams holds dependencies for ProvisioningService, injected by Fx.
type ProvisioningServiceParams struct {
	fx.In

	PartnerRepo     repository.PartnerRepository
	CatalogRepo     repository.CatalogRepository
	UserProfileRepo repository.UserProfileRepository
	Identity        service.IdentityProvider
	Logger          *slog.Logger
}

// NewProvisioningService creates a new provisioning service instance
func NewProvisioningService(params ProvisioningServiceParams) usecase.ProvisioningUsecase {
	return &provisioningService{
		partnerRepo:     params.PartnerRepo,
		catalogRepo:     params.CatalogRepo,
		userProfileRepo: params.UserProfileRepo,
		identity:        params.Identity,
		now:             time.Now,
		logger:          params.Logger,
	}
}

// Seed writes every seed record that does not exist yet. Existing records are left untouched.
func (s *provisioningService) Seed(ctx context.Context) (*usecase.SeedResult, error) {
	result := &usecase.SeedResult{}
	now := s.now().UTC()

	if err := s.seedCatalog(ctx, now, result); err != nil {
		return nil, err
	}
	if err := s.seedPartner(ctx, now, result); err != nil {
		return nil, err
	}

	s.logger.Info("Seed completed",
		slog.Int("brands", result.Brands),
		slog.Int("menu_items", result.MenuItems),
		slog.Int("requirements", result.Requirements),
		slog.Int("partners", result.Partners),
		slog.Int("locations", result.Locations))

	return result, nil
}

func (s *provisioningService) seedCatalog(ctx context.Context, now time.Time, result *usecase.SeedResult) error {
	_, err := s.catalogRepo.FindBrandByID(ctx, constants.DefaultBrandID)
	switch {
	case errors.Is(err, repository.ErrBrandNotFound):
		brand := &entity.Brand{
			ID:         constants.DefaultBrandID,
			Name:       "JustSmashed",
			Categories: []entity.Category{entity.CategoryBurgers, entity.CategoryWings, entity.CategoryFries},
			IsActive:   true,
			CreatedAt:  now,
		}
		if err := s.catalogRepo.SaveBrand(ctx, brand); err != nil {
			return errors.Wrap(err, "failed to seed brand")
		}
		result.Brands++
	case err != nil:
		return errors.Wrap(err, "failed to find brand")
	}

	for i, seed := range seedMenu {
		_, err := s.catalogRepo.FindMenuItem(ctx, constants.DefaultBrandID, seed.id)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrMenuItemNotFound) {
			return errors.Wrap(err, "failed to find menu item")
		}

		item := &entity.MenuItem{
			ID:       seed.id,
			BrandID:  constants.DefaultBrandID,
			Name:     seed.name,
			Category: seed.category,
			Image:    seedPlaceholderImage,
			Order:    i + 1,
			IsActive: true,
		}
		if err := s.catalogRepo.SaveMenuItem(ctx, item); err != nil {
			return errors.Wrapf(err, "failed to seed menu item %s", seed.id)
		}
		result.MenuItems++

		for _, requirement := range seedRequirements(seed) {
			requirement.BrandID = constants.DefaultBrandID
			requirement.ItemID = seed.id
			if err := s.catalogRepo.SaveRequirement(ctx, requirement); err != nil {
				return errors.Wrapf(err, "failed to seed requirement %s of %s", requirement.ID, seed.id)
			}
			result.Requirements++
		}
	}

	return nil
}

func (s *provisioningService) seedPartner(ctx context.Context, now time.Time, result *usecase.SeedResult) error {
	_, err := s.partnerRepo.FindPartnerByID(ctx, seedPartnerID)
	switch {
	case errors.Is(err, repository.ErrPartnerNotFound):
		partner := &entity.Partner{
			ID:        seedPartnerID,
			Name:      "JustFood GmbH",
			ShortName: "JustFood GmbH",
			IsActive:  true,
			Brands:    []string{constants.DefaultBrandID},
			CreatedAt: now,
		}
		if err := s.partnerRepo.SavePartner(ctx, partner); err != nil {
			return errors.Wrap(err, "failed to seed partner")
		}
		result.Partners++
	case err != nil:
		return errors.Wrap(err, "failed to find partner")
	}

	for _, location := range seedLocations() {
		_, err := s.partnerRepo.FindLocation(ctx, seedPartnerID, location.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrLocationNotFound) {
			return errors.Wrap(err, "failed to find location")
		}

		location.CreatedAt = now
		if err := s.partnerRepo.SaveLocation(ctx, location); err != nil {
			return errors.Wrapf(err, "failed to seed location %s", location.ID)
		}
		result.Locations++
	}

	return nil
}

// SetClaims sets the claims of an existing identity and mirrors them into its stored profile.
func (s *provisioningService) SetClaims(ctx context.Context, email string, claims entity.Claims) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", domainerrors.ErrInvalidArgument.WrapMessage("email is required")
	}
	if !claims.Role.IsValid() {
		return "", domainerrors.ErrInvalidArgument.WrapMessage("invalid role")
	}
	if claims.Role == entity.RolePartner && claims.PartnerID == "" {
		return "", domainerrors.ErrInvalidArgument.WrapMessage("partnerId is required for partner role")
	}

	uid, err := s.identity.FindUIDByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrIdentityNotFound) {
			return "", domainerrors.ErrUserNotFound.WrapMessage(email)
		}

		return "", errors.Wrap(err, "failed to find identity")
	}

	if err := s.identity.SetClaims(ctx, uid, claims); err != nil {
		return "", errors.Wrap(err, "failed to set claims")
	}

	now := s.now().UTC()
	profile := &entity.UserProfile{
		ID:          uid,
		Email:       email,
		Role:        claims.Role,
		LocationIDs: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if claims.Role == entity.RolePartner {
		profile.PartnerID = claims.PartnerID
		profile.LocationIDs = slices.Clone(claims.LocationIDs)
	}

	existing, err := s.userProfileRepo.FindUserProfileByID(ctx, uid)
	switch {
	case err == nil:
		profile.CreatedAt = existing.CreatedAt
		profile.Brands = existing.Brands
	case !errors.Is(err, repository.ErrUserProfileNotFound):
		return "", errors.Wrap(err, "failed to find user profile")
	}

	if err := s.userProfileRepo.SaveUserProfile(ctx, profile); err != nil {
		return "", errors.Wrap(err, "failed to save user profile")
	}

	s.logger.Info("Claims set", slog.String("uid", uid), slog.String("role", claims.Role.String()))

	return uid, nil
}
