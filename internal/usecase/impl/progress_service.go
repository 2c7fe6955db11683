package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/domain/entity"
	"photoverify/internal/domain/repository"
	"photoverify/internal/errors"
	"photoverify/internal/infra/metrics"
	"photoverify/internal/usecase"

	"go.uber.org/fx"
)

// progressService implements the ProgressUsecase interface.
type progressService struct {
	catalogRepo    repository.CatalogRepository
	submissionRepo repository.SubmissionRepository
	metrics        *metrics.Recorder
	logger         *slog.Logger
}

// ProgressServiceParams holds dependencies for ProgressService, injected by Fx.
type ProgressServiceParams struct {
	fx.In

	CatalogRepo    repository.CatalogRepository
	SubmissionRepo repository.SubmissionRepository
	Metrics        *metrics.Recorder `optional:"true"`
	Logger         *slog.Logger
}

// NewProgressService creates a new progress service instance
func NewProgressService(params ProgressServiceParams) usecase.ProgressUsecase {
	return &progressService{
		catalogRepo:    params.CatalogRepo,
		submissionRepo: params.SubmissionRepo,
		metrics:        params.Metrics,
		logger:         params.Logger,
	}
}

func (srv *progressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// brandRequirements is the requirement set of a brand's active menu items.
type brandRequirements struct {
	items      []*entity.MenuItem
	refsByItem map[string][]entity.RequirementRef
	all        map[entity.RequirementRef]struct{}
}

func (b *brandRequirements) total() int {
	return len(b.all)
}

// ComputeLocationProgress computes the progress of each location against its primary brand.
// Requirement totals are loaded once per distinct brand of the input.
func (srv *progressService) ComputeLocationProgress(
	ctx context.Context,
	locations []*entity.Location,
) (map[string]entity.Progress, error) {
	defer srv.metrics.ObserveProgress("locations", time.Now())

	byBrand := make(map[string]*brandRequirements)
	for _, location := range locations {
		brandID := location.PrimaryBrandID()
		if brandID == "" {
			continue
		}
		if _, ok := byBrand[brandID]; ok {
			continue
		}

		requirements, err := srv.loadBrandRequirements(ctx, brandID)
		if err != nil {
			return nil, err
		}
		byBrand[brandID] = requirements
	}

	result := make(map[string]entity.Progress, len(locations))
	for _, location := range locations {
		key := location.ProgressKey()

		requirements, ok := byBrand[location.PrimaryBrandID()]
		if !ok || requirements.total() == 0 {
			result[key] = entity.Progress{}

			continue
		}

		approved, err := srv.approvedRefs(ctx, location.PartnerID, location.ID, location.PrimaryBrandID(), requirements)
		if err != nil {
			return nil, err
		}

		result[key] = entity.NewProgress(len(approved), requirements.total())
	}

	srv.log(ctx).Debug("Computed location progress", slog.Int("locations", len(locations)), slog.Int("brands", len(byBrand)))

	return result, nil
}

// ComputeItemProgress computes per-item progress for one location and brand.
func (srv *progressService) ComputeItemProgress(
	ctx context.Context,
	partnerID, locationID, brandID string,
) (*entity.ItemProgress, error) {
	defer srv.metrics.ObserveProgress("items", time.Now())

	result := &entity.ItemProgress{Items: make(map[string]entity.Progress)}
	if brandID == "" {
		return result, nil
	}

	requirements, err := srv.loadBrandRequirements(ctx, brandID)
	if err != nil {
		return nil, err
	}

	approved := map[entity.RequirementRef]struct{}{}
	if requirements.total() > 0 {
		approved, err = srv.approvedRefs(ctx, partnerID, locationID, brandID, requirements)
		if err != nil {
			return nil, err
		}
	}

	for _, item := range requirements.items {
		refs := requirements.refsByItem[item.ID]
		itemApproved := 0
		for _, ref := range refs {
			if _, ok := approved[ref]; ok {
				itemApproved++
			}
		}
		result.Items[item.ID] = entity.NewProgress(itemApproved, len(refs))
	}
	result.Overall = entity.NewProgress(len(approved), requirements.total())

	return result, nil
}

// loadBrandRequirements reads the requirements of every active menu item of the brand.
func (srv *progressService) loadBrandRequirements(ctx context.Context, brandID string) (*brandRequirements, error) {
	items, err := srv.catalogRepo.ListMenuItems(ctx, brandID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list menu items of brand %s", brandID)
	}

	result := &brandRequirements{
		refsByItem: make(map[string][]entity.RequirementRef),
		all:        make(map[entity.RequirementRef]struct{}),
	}
	for _, item := range items {
		if !item.IsActive {
			continue
		}

		requirements, err := srv.catalogRepo.ListRequirements(ctx, brandID, item.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list requirements of item %s", item.ID)
		}

		result.items = append(result.items, item)
		refs := make([]entity.RequirementRef, 0, len(requirements))
		for _, requirement := range requirements {
			ref := requirement.Ref()
			refs = append(refs, ref)
			result.all[ref] = struct{}{}
		}
		result.refsByItem[item.ID] = refs
	}

	return result, nil
}

// approvedRefs returns the distinct requirement pairs with at least one approved submission.
// Pairs that are not part of the brand's current requirement set are ignored.
func (srv *progressService) approvedRefs(
	ctx context.Context,
	partnerID, locationID, brandID string,
	requirements *brandRequirements,
) (map[entity.RequirementRef]struct{}, error) {
	submissions, err := srv.submissionRepo.FindSubmissions(ctx, entity.SubmissionFilter{
		PartnerID:  partnerID,
		LocationID: locationID,
		BrandID:    brandID,
		Status:     entity.SubmissionStatusApproved,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find approved submissions of location %s", locationID)
	}

	approved := make(map[entity.RequirementRef]struct{}, len(submissions))
	for _, submission := range submissions {
		ref := submission.Ref()
		if _, ok := requirements.all[ref]; !ok {
			continue
		}
		approved[ref] = struct{}{}
	}

	return approved, nil
}
