package usecase

import (
	"context"

	"photoverify/internal/domain/entity"
)

// SeedResult counts the records written by a seed run.
type SeedResult struct {
	Brands       int
	MenuItems    int
	Requirements int
	Partners     int
	Locations    int
}

// ProvisioningUsecase defines operator tasks run from the command line.
type ProvisioningUsecase interface {
	// Seed writes the default brand catalog and demo partner. Running it again is harmless.
	Seed(ctx context.Context) (*SeedResult, error)

	// SetClaims sets the custom claims of the identity registered with the email and returns its uid.
	SetClaims(ctx context.Context, email string, claims entity.Claims) (string, error)
}
