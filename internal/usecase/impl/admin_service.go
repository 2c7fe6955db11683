package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/domain/constants"
	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/domain/repository"
	"photoverify/internal/domain/service"
	"photoverify/internal/errors"
	"photoverify/internal/usecase"

	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	partnerRepo     repository.PartnerRepository
	catalogRepo     repository.CatalogRepository
	userProfileRepo repository.UserProfileRepository
	identity        service.IdentityProvider
	passwords       service.PasswordGenerator
	now             func() time.Time
	logger          *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	PartnerRepo     repository.PartnerRepository
	CatalogRepo     repository.CatalogRepository
	UserProfileRepo repository.UserProfileRepository
	Identity        service.IdentityProvider
	Passwords       service.PasswordGenerator
	Logger          *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		partnerRepo:     params.PartnerRepo,
		catalogRepo:     params.CatalogRepo,
		userProfileRepo: params.UserProfileRepo,
		identity:        params.Identity,
		passwords:       params.Passwords,
		now:             time.Now,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}

	return *value
}

// trimNonEmpty trims every value and drops the blank ones.
func trimNonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreatePartner writes a partner. The short name defaults to the name and brands to the default brand.
func (srv *adminService) CreatePartner(
	ctx context.Context,
	identity *entity.Identity,
	input *usecase.CreatePartnerInput,
) (*entity.Partner, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(input.ID)
	name := strings.TrimSpace(input.Name)
	if id == "" || name == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("partner id and name are required")
	}

	shortName := strings.TrimSpace(input.ShortName)
	if shortName == "" {
		shortName = name
	}
	brands := trimNonEmpty(input.Brands)
	if len(brands) == 0 {
		brands = []string{constants.DefaultBrandID}
	}

	partner := &entity.Partner{
		ID:        id,
		Name:      name,
		ShortName: shortName,
		IsActive:  boolOrDefault(input.IsActive, true),
		Brands:    brands,
		CreatedAt: srv.now().UTC(),
	}
	if err := srv.partnerRepo.SavePartner(ctx, partner); err != nil {
		return nil, errors.Wrap(err, "failed to save partner")
	}

	srv.log(ctx).Info("Partner created", slog.String("partner_id", partner.ID))

	return partner, nil
}

// CreateLocation writes a location under an existing partner. Brand ids default to the default brand.
func (srv *adminService) CreateLocation(
	ctx context.Context,
	identity *entity.Identity,
	input *usecase.CreateLocationInput,
) (*entity.Location, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	partnerID := strings.TrimSpace(input.PartnerID)
	id := strings.TrimSpace(input.ID)
	name := strings.TrimSpace(input.Name)
	if partnerID == "" || id == "" || name == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("partner id, location id and name are required")
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("latitude and longitude must be given together")
	}

	if _, err := srv.partnerRepo.FindPartnerByID(ctx, partnerID); err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner")
	}

	brandIDs := trimNonEmpty(input.BrandIDs)
	if len(brandIDs) == 0 {
		brandIDs = []string{constants.DefaultBrandID}
	}

	location := &entity.Location{
		ID:        id,
		PartnerID: partnerID,
		Name:      name,
		Address:   strings.TrimSpace(input.Address),
		City:      strings.TrimSpace(input.City),
		Country:   strings.TrimSpace(input.Country),
		BrandIDs:  brandIDs,
		IsActive:  boolOrDefault(input.IsActive, true),
		CreatedAt: srv.now().UTC(),
	}
	if input.Latitude != nil {
		location.Coordinates = &entity.GeoPoint{Latitude: *input.Latitude, Longitude: *input.Longitude}
	}

	if err := srv.partnerRepo.SaveLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to save location")
	}

	srv.log(ctx).Info("Location created", slog.String("partner_id", partnerID), slog.String("location_id", id))

	return location, nil
}

// ListPartnersWithLocations returns every partner with its locations
func (srv *adminService) ListPartnersWithLocations(
	ctx context.Context,
	identity *entity.Identity,
) ([]*entity.PartnerWithLocations, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	partners, err := srv.partnerRepo.ListPartners(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	result := make([]*entity.PartnerWithLocations, 0, len(partners))
	for _, partner := range partners {
		locations, err := srv.partnerRepo.ListLocationsByPartner(ctx, partner.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list locations of partner %s", partner.ID)
		}
		result = append(result, &entity.PartnerWithLocations{Partner: partner, Locations: locations})
	}

	return result, nil
}

// ListUsers returns every stored user profile
func (srv *adminService) ListUsers(ctx context.Context, identity *entity.Identity) ([]*entity.UserProfile, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	profiles, err := srv.userProfileRepo.ListUserProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user profiles")
	}

	return profiles, nil
}

// UpsertUserProfile writes the profile of an existing identity, keeping its creation time.
func (srv *adminService) UpsertUserProfile(
	ctx context.Context,
	identity *entity.Identity,
	input *usecase.UpsertUserProfileInput,
) (*entity.UserProfile, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	uid := strings.TrimSpace(input.UID)
	if uid == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("uid is required")
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("role must be partner, reviewer or admin")
	}

	now := srv.now().UTC()
	profile := &entity.UserProfile{
		ID:          uid,
		Email:       normalizeEmail(input.Email),
		Role:        input.Role,
		LocationIDs: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	switch input.Role {
	case entity.RolePartner:
		profile.PartnerID = strings.TrimSpace(input.PartnerID)
		if profile.PartnerID == "" {
			return nil, domainerrors.ErrInvalidArgument.WrapMessage("partnerId is required for partner role")
		}
		profile.LocationIDs = trimNonEmpty(input.LocationIDs)
	case entity.RoleReviewer:
		profile.Brands = trimNonEmpty(input.Brands)
		if len(profile.Brands) == 0 {
			profile.Brands = []string{constants.DefaultBrandID}
		}
	}

	existing, err := srv.userProfileRepo.FindUserProfileByID(ctx, uid)
	switch {
	case err == nil:
		profile.CreatedAt = existing.CreatedAt
	case !errors.Is(err, repository.ErrUserProfileNotFound):
		return nil, errors.Wrap(err, "failed to find user profile")
	}

	if err := srv.userProfileRepo.SaveUserProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save user profile")
	}

	return profile, nil
}

// CreateUser provisions an identity with a temporary password, its claims and its profile.
// Every argument is validated before the first write; a failure after the identity exists
// deletes it again.
func (srv *adminService) CreateUser(
	ctx context.Context,
	identity *entity.Identity,
	input *usecase.CreateUserInput,
) (*usecase.CreateUserOutput, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	profile, err := srv.validateNewUser(ctx, input)
	if err != nil {
		return nil, err
	}

	tempPassword, err := srv.passwords.Generate()
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to generate temporary password")
	}

	uid, err := srv.identity.CreateUser(ctx, profile.Email, tempPassword)
	if err != nil {
		if errors.Is(err, service.ErrIdentityAlreadyExists) {
			return nil, domainerrors.ErrUserAlreadyExists
		}
		srv.log(ctx).Error("adminCreateUser failed to create identity", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}
	profile.ID = uid

	if err := srv.identity.SetClaims(ctx, uid, profile.Claims()); err != nil {
		srv.rollbackIdentity(ctx, uid)

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to set claims: " + err.Error())
	}

	if err := srv.userProfileRepo.SaveUserProfile(ctx, profile); err != nil {
		srv.rollbackIdentity(ctx, uid)

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to save user profile: " + err.Error())
	}

	srv.log(ctx).Info("User created",
		slog.String("uid", uid),
		slog.String("role", profile.Role.String()),
		slog.String("created_by", identity.UID))

	return &usecase.CreateUserOutput{UID: uid, TempPassword: tempPassword}, nil
}

// validateNewUser normalizes the callable's arguments into the profile to store.
func (srv *adminService) validateNewUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.UserProfile, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("email is required")
	}

	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("email is invalid")
	}

	role := entity.Role(strings.TrimSpace(string(input.Role)))
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("invalid role")
	}

	now := srv.now().UTC()
	profile := &entity.UserProfile{
		Email:       email,
		Role:        role,
		LocationIDs: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if role != entity.RolePartner {
		return profile, nil
	}

	profile.PartnerID = strings.TrimSpace(input.PartnerID)
	if profile.PartnerID == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("partnerId is required for partner role")
	}
	profile.LocationIDs = trimNonEmpty(input.LocationIDs)
	if len(profile.LocationIDs) == 0 {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("at least one locationId is required for partner role")
	}

	if _, err := srv.partnerRepo.FindPartnerByID(ctx, profile.PartnerID); err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrInvalidArgument.WrapMessage("unknown partnerId")
		}

		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}
	for _, locationID := range profile.LocationIDs {
		if _, err := srv.partnerRepo.FindLocation(ctx, profile.PartnerID, locationID); err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				return nil, domainerrors.ErrInvalidArgument.WrapMessage("unknown locationId " + locationID)
			}

			return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
		}
	}

	return profile, nil
}

func (srv *adminService) rollbackIdentity(ctx context.Context, uid string) {
	if err := srv.identity.DeleteUser(ctx, uid); err != nil {
		srv.log(ctx).Error("Failed to roll back identity", slog.String("uid", uid), slog.Any("error", err))
	}
}

// CreateBrand writes a brand
func (srv *adminService) CreateBrand(
	ctx context.Context,
	identity *entity.Identity,
	input *usecase.CreateBrandInput,
) (*entity.Brand, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(input.ID)
	name := strings.TrimSpace(input.Name)
	if id == "" || name == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("brand id and name are required")
	}
	for _, category := range input.Categories {
		if !category.IsValid() {
			return nil, domainerrors.ErrInvalidArgument.WrapMessage("unknown category " + string(category))
		}
	}

	brand := &entity.Brand{
		ID:         id,
		Name:       name,
		Categories: input.Categories,
		IsActive:   boolOrDefault(input.IsActive, true),
		CreatedAt:  srv.now().UTC(),
	}
	if brand.Categories == nil {
		brand.Categories = []entity.Category{}
	}

	if err := srv.catalogRepo.SaveBrand(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to save brand")
	}

	return brand, nil
}

// CreateMenuItem writes a menu item under an existing brand
func (srv *adminService) CreateMenuItem(
	ctx context.Context,
	identity *entity.Identity,
	input *usecase.CreateMenuItemInput,
) (*entity.MenuItem, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	brandID := strings.TrimSpace(input.BrandID)
	id := strings.TrimSpace(input.ID)
	name := strings.TrimSpace(input.Name)
	if brandID == "" || id == "" || name == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("brand id, item id and name are required")
	}
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("unknown category " + string(input.Category))
	}

	if _, err := srv.catalogRepo.FindBrandByID(ctx, brandID); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, domainerrors.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand")
	}

	item := &entity.MenuItem{
		ID:          id,
		BrandID:     brandID,
		Name:        name,
		Category:    input.Category,
		Description: strings.TrimSpace(input.Description),
		Image:       strings.TrimSpace(input.Image),
		Order:       input.Order,
		IsActive:    boolOrDefault(input.IsActive, true),
	}
	if err := srv.catalogRepo.SaveMenuItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to save menu item")
	}

	return item, nil
}

// CreateRequirement writes a requirement under an existing menu item
func (srv *adminService) CreateRequirement(
	ctx context.Context,
	identity *entity.Identity,
	input *usecase.CreateRequirementInput,
) (*entity.Requirement, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	brandID := strings.TrimSpace(input.BrandID)
	itemID := strings.TrimSpace(input.ItemID)
	id := strings.TrimSpace(input.ID)
	title := strings.TrimSpace(input.Title)
	if brandID == "" || itemID == "" || id == "" || title == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("brand id, item id, requirement id and title are required")
	}

	if _, err := srv.catalogRepo.FindMenuItem(ctx, brandID, itemID); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	requirement := &entity.Requirement{
		ID:              id,
		BrandID:         brandID,
		ItemID:          itemID,
		Title:           title,
		AngleHint:       strings.TrimSpace(input.AngleHint),
		ExampleImageURL: strings.TrimSpace(input.ExampleImageURL),
		Checklist:       trimNonEmpty(input.Checklist),
	}
	if err := srv.catalogRepo.SaveRequirement(ctx, requirement); err != nil {
		return nil, errors.Wrap(err, "failed to save requirement")
	}

	return requirement, nil
}
