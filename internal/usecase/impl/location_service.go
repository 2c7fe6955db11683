package impl

import (
	"context"
	"log/slog"
	"slices"
	"sort"

	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/domain/repository"
	"photoverify/internal/domain/service"
	"photoverify/internal/errors"
	"photoverify/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

const (
	defaultNearbyRadiusKm = 5.0
	maxNearbyRadiusKm     = 100.0
)

type locationService struct {
	partnerRepo repository.PartnerRepository
	catalogRepo repository.CatalogRepository
	progress    usecase.ProgressUsecase
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	PartnerRepo repository.PartnerRepository
	CatalogRepo repository.CatalogRepository
	Progress    usecase.ProgressUsecase
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		partnerRepo: params.PartnerRepo,
		catalogRepo: params.CatalogRepo,
		progress:    params.Progress,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListVisibleLocations returns every location for reviewers and admins, and the assigned
// locations of the caller's partner otherwise.
func (s *locationService) ListVisibleLocations(ctx context.Context, identity *entity.Identity) ([]*entity.Location, error) {
	if err := requireAuthenticated(identity); err != nil {
		return nil, err
	}

	if identity.CanReview() {
		locations, err := s.partnerRepo.ListAllLocations(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list all locations")
		}

		return locations, nil
	}

	if identity.Role != entity.RolePartner || identity.PartnerID == "" {
		return []*entity.Location{}, nil
	}

	locations, err := s.partnerRepo.ListLocationsByPartner(ctx, identity.PartnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partner locations")
	}

	visible := make([]*entity.Location, 0, len(locations))
	for _, location := range locations {
		if slices.Contains(identity.LocationIDs, location.ID) {
			visible = append(visible, location)
		}
	}

	return visible, nil
}

// Dashboard returns the visible locations with their progress
func (s *locationService) Dashboard(ctx context.Context, identity *entity.Identity) ([]*usecase.LocationOverview, error) {
	locations, err := s.ListVisibleLocations(ctx, identity)
	if err != nil {
		return nil, err
	}

	progress, err := s.progress.ComputeLocationProgress(ctx, locations)
	if err != nil {
		return nil, err
	}

	overviews := make([]*usecase.LocationOverview, 0, len(locations))
	for _, location := range locations {
		overviews = append(overviews, &usecase.LocationOverview{
			Location: location,
			Progress: progress[location.ProgressKey()],
		})
	}

	return overviews, nil
}

// GetLocationDetail returns the location with its brand catalog and per-item progress
func (s *locationService) GetLocationDetail(
	ctx context.Context,
	identity *entity.Identity,
	partnerID, locationID string,
) (*usecase.LocationDetail, error) {
	if err := requireLocationAccess(identity, partnerID, locationID); err != nil {
		return nil, err
	}

	location, err := s.findLocation(ctx, partnerID, locationID)
	if err != nil {
		return nil, err
	}

	detail := &usecase.LocationDetail{Location: location, Items: []*usecase.MenuItemDetail{}}
	brandID := location.PrimaryBrandID()
	if brandID == "" {
		return detail, nil
	}

	brand, err := s.catalogRepo.FindBrandByID(ctx, brandID)
	switch {
	case err == nil:
		detail.Brand = brand
	case errors.Is(err, repository.ErrBrandNotFound):
		s.log(ctx).Warn("Location references an unknown brand", slog.String("location_id", locationID), slog.String("brand_id", brandID))
	default:
		return nil, errors.Wrap(err, "failed to find brand")
	}

	itemProgress, err := s.progress.ComputeItemProgress(ctx, partnerID, locationID, brandID)
	if err != nil {
		return nil, err
	}
	detail.Progress = itemProgress.Overall

	items, err := s.catalogRepo.ListMenuItems(ctx, brandID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}
	for _, item := range items {
		if !item.IsActive {
			continue
		}

		requirements, err := s.catalogRepo.ListRequirements(ctx, brandID, item.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list requirements")
		}

		detail.Items = append(detail.Items, &usecase.MenuItemDetail{
			Item:         item,
			Requirements: requirements,
			Progress:     itemProgress.Items[item.ID],
		})
	}

	return detail, nil
}

// FindLocationByID looks a location up across partners
func (s *locationService) FindLocationByID(ctx context.Context, locationID string) (*entity.Location, error) {
	location, err := s.partnerRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return location, nil
}

// GenerateLocationQR renders the viewer QR code of a location
func (s *locationService) GenerateLocationQR(
	ctx context.Context,
	identity *entity.Identity,
	partnerID, locationID string,
) ([]byte, error) {
	if err := requireLocationAccess(identity, partnerID, locationID); err != nil {
		return nil, err
	}

	if _, err := s.findLocation(ctx, partnerID, locationID); err != nil {
		return nil, err
	}

	png, err := s.qrService.GenerateLocationQR(locationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate location QR code")
	}

	return png, nil
}

// FindNearbyLocations returns visible locations within the radius, nearest first.
// Locations without coordinates are skipped.
func (s *locationService) FindNearbyLocations(
	ctx context.Context,
	identity *entity.Identity,
	query *usecase.NearbyQuery,
) ([]*usecase.NearbyLocation, error) {
	if err := requireReviewer(identity); err != nil {
		return nil, err
	}

	radiusKm := query.RadiusKm
	if radiusKm <= 0 {
		radiusKm = defaultNearbyRadiusKm
	}
	if radiusKm > maxNearbyRadiusKm {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("radius exceeds 100 km")
	}

	locations, err := s.partnerRepo.ListAllLocations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all locations")
	}

	center := orb.Point{query.Longitude, query.Latitude}
	radiusMeters := radiusKm * 1000
	bound := geo.NewBoundAroundPoint(center, radiusMeters)

	nearby := make([]*usecase.NearbyLocation, 0)
	for _, location := range locations {
		if location.Coordinates == nil {
			continue
		}

		point := orb.Point{location.Coordinates.Longitude, location.Coordinates.Latitude}
		if !bound.Contains(point) {
			continue
		}

		distance := geo.DistanceHaversine(center, point)
		if distance > radiusMeters {
			continue
		}

		nearby = append(nearby, &usecase.NearbyLocation{Location: location, DistanceKm: distance / 1000})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby, nil
}

func (s *locationService) findLocation(ctx context.Context, partnerID, locationID string) (*entity.Location, error) {
	location, err := s.partnerRepo.FindLocation(ctx, partnerID, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return location, nil
}
