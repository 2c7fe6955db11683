package usecase

import (
	"context"

	"photoverify/internal/domain/entity"
)

// CreatePartnerInput represents the input for provisioning a partner
type CreatePartnerInput struct {
	ID        string   `json:"id" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	ShortName string   `json:"short_name"`
	Brands    []string `json:"brands"`
	IsActive  *bool    `json:"is_active,omitempty"`
}

// CreateLocationInput represents the input for provisioning a location of a partner
type CreateLocationInput struct {
	PartnerID string   `json:"-" param:"partnerId" validate:"required"`
	ID        string   `json:"id" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Country   string   `json:"country"`
	BrandIDs  []string `json:"brand_ids"`
	IsActive  *bool    `json:"is_active,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

// UpsertUserProfileInput represents a profile written by an admin for an existing identity
type UpsertUserProfileInput struct {
	UID         string      `json:"-" param:"uid" validate:"required"`
	Email       string      `json:"email" validate:"omitempty,email"`
	Role        entity.Role `json:"role" validate:"required"`
	PartnerID   string      `json:"partner_id"`
	LocationIDs []string    `json:"location_ids"`
	Brands      []string    `json:"brands"`
}

// CreateUserInput represents the input of the adminCreateUser callable
type CreateUserInput struct {
	Email       string      `json:"email"`
	Role        entity.Role `json:"role"`
	PartnerID   string      `json:"partnerId"`
	LocationIDs []string    `json:"locationIds"`
}

// CreateUserOutput is the new identity and its temporary password
type CreateUserOutput struct {
	UID          string `json:"uid"`
	TempPassword string `json:"tempPassword"`
}

// CreateBrandInput represents the input for creating a brand
type CreateBrandInput struct {
	ID         string            `json:"id" validate:"required"`
	Name       string            `json:"name" validate:"required"`
	Categories []entity.Category `json:"categories"`
	IsActive   *bool             `json:"is_active,omitempty"`
}

// CreateMenuItemInput represents the input for creating a menu item of a brand
type CreateMenuItemInput struct {
	BrandID     string          `json:"-" param:"brandId" validate:"required"`
	ID          string          `json:"id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Category    entity.Category `json:"category" validate:"required"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Order       int             `json:"order"`
	IsActive    *bool           `json:"is_active,omitempty"`
}

// CreateRequirementInput represents the input for creating a requirement of a menu item
type CreateRequirementInput struct {
	BrandID         string   `json:"-" param:"brandId" validate:"required"`
	ItemID          string   `json:"-" param:"itemId" validate:"required"`
	ID              string   `json:"id" validate:"required"`
	Title           string   `json:"title" validate:"required"`
	AngleHint       string   `json:"angle_hint"`
	ExampleImageURL string   `json:"example_image_url"`
	Checklist       []string `json:"checklist"`
}

// AdminUsecase defines provisioning operations reserved for admins.
type AdminUsecase interface {
	// Partners and locations
	CreatePartner(ctx context.Context, identity *entity.Identity, input *CreatePartnerInput) (*entity.Partner, error)
	CreateLocation(ctx context.Context, identity *entity.Identity, input *CreateLocationInput) (*entity.Location, error)
	ListPartnersWithLocations(ctx context.Context, identity *entity.Identity) ([]*entity.PartnerWithLocations, error)

	// Users
	ListUsers(ctx context.Context, identity *entity.Identity) ([]*entity.UserProfile, error)
	UpsertUserProfile(ctx context.Context, identity *entity.Identity, input *UpsertUserProfileInput) (*entity.UserProfile, error)
	CreateUser(ctx context.Context, identity *entity.Identity, input *CreateUserInput) (*CreateUserOutput, error)

	// Catalog
	CreateBrand(ctx context.Context, identity *entity.Identity, input *CreateBrandInput) (*entity.Brand, error)
	CreateMenuItem(ctx context.Context, identity *entity.Identity, input *CreateMenuItemInput) (*entity.MenuItem, error)
	CreateRequirement(ctx context.Context, identity *entity.Identity, input *CreateRequirementInput) (*entity.Requirement, error)
}
