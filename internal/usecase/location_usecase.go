package usecase

import (
	"context"

	"photoverify/internal/domain/entity"
)

// LocationOverview pairs a location with its verification progress.
type LocationOverview struct {
	Location *entity.Location `json:"location"`
	Progress entity.Progress  `json:"progress"`
}

// MenuItemDetail is a menu item with its requirements and progress at one location.
type MenuItemDetail struct {
	Item         *entity.MenuItem      `json:"item"`
	Requirements []*entity.Requirement `json:"requirements"`
	Progress     entity.Progress       `json:"progress"`
}

// LocationDetail is everything the location page shows.
type LocationDetail struct {
	Location *entity.Location  `json:"location"`
	Brand    *entity.Brand     `json:"brand,omitempty"`
	Progress entity.Progress   `json:"progress"`
	Items    []*MenuItemDetail `json:"items"`
}

// NearbyLocation is a location within the requested radius.
type NearbyLocation struct {
	Location   *entity.Location `json:"location"`
	DistanceKm float64          `json:"distance_km"`
}

// NearbyQuery selects locations around a point.
type NearbyQuery struct {
	Latitude  float64 `query:"lat" validate:"gte=-90,lte=90"`
	Longitude float64 `query:"lng" validate:"gte=-180,lte=180"`
	RadiusKm  float64 `query:"radiusKm" validate:"gte=0"`
}

// LocationUsecase defines the read side of partners' locations.
type LocationUsecase interface {
	// ListVisibleLocations returns the locations the caller may see.
	ListVisibleLocations(ctx context.Context, identity *entity.Identity) ([]*entity.Location, error)

	// Dashboard returns the visible locations with their progress.
	Dashboard(ctx context.Context, identity *entity.Identity) ([]*LocationOverview, error)

	// GetLocationDetail returns a location with its catalog and per-item progress.
	GetLocationDetail(ctx context.Context, identity *entity.Identity, partnerID, locationID string) (*LocationDetail, error)

	// FindLocationByID looks a location up across partners for the public viewer.
	FindLocationByID(ctx context.Context, locationID string) (*entity.Location, error)

	// GenerateLocationQR renders a QR code linking to the viewer page of the location.
	GenerateLocationQR(ctx context.Context, identity *entity.Identity, partnerID, locationID string) ([]byte, error)

	// FindNearbyLocations returns locations with coordinates within the radius, nearest first.
	FindNearbyLocations(ctx context.Context, identity *entity.Identity, query *NearbyQuery) ([]*NearbyLocation, error)
}
