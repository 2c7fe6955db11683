// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"photoverify/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for partner and location persistence.
var (
	// ErrPartnerNotFound is returned when a partner is not found.
	ErrPartnerNotFound = errors.New("partner not found")
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")
)

// PartnerRepository stores partners and the locations they own.
type PartnerRepository interface {
	// SavePartner creates the partner or merges it into the existing record.
	SavePartner(ctx context.Context, partner *entity.Partner) error

	// FindPartnerByID retrieves a partner by its id.
	FindPartnerByID(ctx context.Context, partnerID string) (*entity.Partner, error)

	// ListPartners retrieves every partner ordered by id.
	ListPartners(ctx context.Context) ([]*entity.Partner, error)

	// SaveLocation creates the location under its partner or merges it into the existing record.
	SaveLocation(ctx context.Context, location *entity.Location) error

	// FindLocation retrieves a location of a partner.
	FindLocation(ctx context.Context, partnerID, locationID string) (*entity.Location, error)

	// FindLocationByID looks a location up by id across all partners.
	FindLocationByID(ctx context.Context, locationID string) (*entity.Location, error)

	// ListLocationsByPartner retrieves the locations of one partner ordered by id.
	ListLocationsByPartner(ctx context.Context, partnerID string) ([]*entity.Location, error)

	// ListAllLocations retrieves the locations of every partner.
	ListAllLocations(ctx context.Context) ([]*entity.Location, error)
}
