package repository

import (
	"context"

	"photoverify/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrBrandNotFound is returned when a brand is not found.
	ErrBrandNotFound = errors.New("brand not found")
	// ErrMenuItemNotFound is returned when a menu item is not found.
	ErrMenuItemNotFound = errors.New("menu item not found")
	// ErrRequirementNotFound is returned when a requirement is not found.
	ErrRequirementNotFound = errors.New("requirement not found")
)

// CatalogRepository stores brands, their menu items and the photo requirements of each item.
type CatalogRepository interface {
	// SaveBrand creates the brand or merges it into the existing record.
	SaveBrand(ctx context.Context, brand *entity.Brand) error

	// FindBrandByID retrieves a brand by its id.
	FindBrandByID(ctx context.Context, brandID string) (*entity.Brand, error)

	// ListBrands retrieves every brand ordered by id.
	ListBrands(ctx context.Context) ([]*entity.Brand, error)

	// SaveMenuItem creates the menu item under its brand or merges it into the existing record.
	SaveMenuItem(ctx context.Context, item *entity.MenuItem) error

	// FindMenuItem retrieves a menu item of a brand.
	FindMenuItem(ctx context.Context, brandID, itemID string) (*entity.MenuItem, error)

	// ListMenuItems retrieves the menu items of a brand ordered by their display order.
	ListMenuItems(ctx context.Context, brandID string) ([]*entity.MenuItem, error)

	// SaveRequirement creates the requirement under its item or merges it into the existing record.
	SaveRequirement(ctx context.Context, requirement *entity.Requirement) error

	// FindRequirement retrieves a requirement of a menu item.
	FindRequirement(ctx context.Context, brandID, itemID, requirementID string) (*entity.Requirement, error)

	// ListRequirements retrieves the requirements of a menu item ordered by id.
	ListRequirements(ctx context.Context, brandID, itemID string) ([]*entity.Requirement, error)
}
