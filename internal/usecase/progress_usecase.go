// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"photoverify/internal/domain/entity"
)

// ProgressUsecase computes verification completeness from approved submissions.
type ProgressUsecase interface {
	// ComputeLocationProgress returns the progress of each location keyed by "partnerId_locationId".
	ComputeLocationProgress(ctx context.Context, locations []*entity.Location) (map[string]entity.Progress, error)

	// ComputeItemProgress returns the progress of each active menu item of the brand at one location.
	ComputeItemProgress(ctx context.Context, partnerID, locationID, brandID string) (*entity.ItemProgress, error)
}
