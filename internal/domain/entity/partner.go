package entity

import "time"

// Partner is a restaurant-owning organization on-boarded onto the platform.
type Partner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name"`
	IsActive  bool      `json:"is_active"`
	Brands    []string  `json:"brands"`
	CreatedAt time.Time `json:"created_at"`
}

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is a single physical restaurant belonging to exactly one Partner.
type Location struct {
	ID          string    `json:"id"`
	PartnerID   string    `json:"partner_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	BrandIDs    []string  `json:"brand_ids"`
	IsActive    bool      `json:"is_active"`
	Coordinates *GeoPoint `json:"coordinates,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PrimaryBrandID returns the brand used for progress, or "" when the location has none.
func (l *Location) PrimaryBrandID() string {
	if l == nil || len(l.BrandIDs) == 0 {
		return ""
	}

	return l.BrandIDs[0]
}

// ProgressKey returns the key under which this location's progress is reported.
func (l *Location) ProgressKey() string {
	return ProgressKey(l.PartnerID, l.ID)
}

// PartnerWithLocations groups a partner with the locations it owns.
type PartnerWithLocations struct {
	Partner   *Partner    `json:"partner"`
	Locations []*Location `json:"locations"`
}
