package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/domain/constants"
	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/domain/repository"
	"photoverify/internal/domain/service"
	"photoverify/internal/errors"
	"photoverify/internal/infra/metrics"
	"photoverify/internal/usecase"

	"go.uber.org/fx"
)

type reviewService struct {
	submissionRepo repository.SubmissionRepository
	partnerRepo    repository.PartnerRepository
	catalogRepo    repository.CatalogRepository
	publisher      service.EventPublisher
	metrics        *metrics.Recorder
	now            func() time.Time
	logger         *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	SubmissionRepo repository.SubmissionRepository
	PartnerRepo    repository.PartnerRepository
	CatalogRepo    repository.CatalogRepository
	Publisher      service.EventPublisher
	Metrics        *metrics.Recorder `optional:"true"`
	Logger         *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		submissionRepo: params.SubmissionRepo,
		partnerRepo:    params.PartnerRepo,
		catalogRepo:    params.CatalogRepo,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (s *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListPending returns the submissions awaiting review, oldest first
func (s *reviewService) ListPending(ctx context.Context, identity *entity.Identity) ([]*usecase.PendingSubmission, error) {
	if err := requireReviewer(identity); err != nil {
		return nil, err
	}

	submissions, err := s.submissionRepo.FindSubmissions(ctx, entity.SubmissionFilter{Status: entity.SubmissionStatusSubmitted})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending submissions")
	}
	slices.Reverse(submissions)

	lookup := newReviewLookup(s.partnerRepo, s.catalogRepo)
	pending := make([]*usecase.PendingSubmission, 0, len(submissions))
	for _, submission := range submissions {
		enriched, err := lookup.enrich(ctx, submission)
		if err != nil {
			return nil, err
		}
		pending = append(pending, enriched)
	}

	return pending, nil
}

// Decide approves or rejects a submission that is still submitted
func (s *reviewService) Decide(
	ctx context.Context,
	identity *entity.Identity,
	input *usecase.DecideInput,
) (*entity.Submission, error) {
	if err := requireReviewer(identity); err != nil {
		return nil, err
	}
	if input == nil || strings.TrimSpace(input.SubmissionID) == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("submission id is required")
	}

	status, ok := input.Decision.Status()
	if !ok {
		return nil, domainerrors.ErrInvalidDecision
	}

	comment := strings.TrimSpace(input.Comment)
	if status == entity.SubmissionStatusRejected && comment == "" {
		return nil, domainerrors.ErrRejectCommentRequired
	}

	now := s.now().UTC()
	submission, err := s.submissionRepo.DecideSubmission(ctx, input.SubmissionID, entity.ReviewDecision{
		Status:         status,
		Comment:        comment,
		ReviewerUserID: identity.UID,
		ReviewedAt:     now,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSubmissionNotFound):
			return nil, domainerrors.ErrSubmissionNotFound
		case errors.Is(err, repository.ErrSubmissionNotPending):
			return nil, domainerrors.ErrSubmissionAlreadyReviewed
		default:
			return nil, errors.Wrap(err, "failed to decide submission")
		}
	}

	s.metrics.SubmissionDecided(string(status))
	publishSubmissionEvent(ctx, s.log(ctx), s.publisher, constants.EventSubmissionReviewed, submission, identity.UID, now)

	s.log(ctx).Info("Submission decided",
		slog.String("submission_id", submission.ID),
		slog.String("status", string(status)),
		slog.String("reviewer_user_id", identity.UID))

	return submission, nil
}

// reviewLookup memoizes the catalog and location reads of one queue listing.
type reviewLookup struct {
	partnerRepo  repository.PartnerRepository
	catalogRepo  repository.CatalogRepository
	items        map[string]*entity.MenuItem
	requirements map[string]*entity.Requirement
	locations    map[string]*entity.Location
}

func newReviewLookup(partnerRepo repository.PartnerRepository, catalogRepo repository.CatalogRepository) *reviewLookup {
	return &reviewLookup{
		partnerRepo:  partnerRepo,
		catalogRepo:  catalogRepo,
		items:        make(map[string]*entity.MenuItem),
		requirements: make(map[string]*entity.Requirement),
		locations:    make(map[string]*entity.Location),
	}
}

func (l *reviewLookup) enrich(ctx context.Context, submission *entity.Submission) (*usecase.PendingSubmission, error) {
	pending := &usecase.PendingSubmission{
		Submission:       submission,
		ItemName:         submission.ItemID,
		RequirementTitle: submission.RequirementID,
		LocationName:     submission.LocationID,
	}

	item, err := l.item(ctx, submission.BrandID, submission.ItemID)
	if err != nil {
		return nil, err
	}
	if item != nil {
		if item.Name != "" {
			pending.ItemName = item.Name
		}
		pending.ItemCategory = item.Category
	}

	requirement, err := l.requirement(ctx, submission.BrandID, submission.ItemID, submission.RequirementID)
	if err != nil {
		return nil, err
	}
	if requirement != nil {
		if requirement.Title != "" {
			pending.RequirementTitle = requirement.Title
		}
		pending.ExampleImageURL = requirement.ExampleImageURL
	}

	location, err := l.location(ctx, submission.PartnerID, submission.LocationID)
	if err != nil {
		return nil, err
	}
	if location != nil {
		if location.Name != "" {
			pending.LocationName = location.Name
		}
		pending.LocationAddress = location.Address
	}

	return pending, nil
}

func (l *reviewLookup) item(ctx context.Context, brandID, itemID string) (*entity.MenuItem, error) {
	key := brandID + "/" + itemID
	if item, ok := l.items[key]; ok {
		return item, nil
	}

	item, err := l.catalogRepo.FindMenuItem(ctx, brandID, itemID)
	if err != nil && !errors.Is(err, repository.ErrMenuItemNotFound) {
		return nil, errors.Wrap(err, "failed to find menu item")
	}
	l.items[key] = item

	return item, nil
}

func (l *reviewLookup) requirement(ctx context.Context, brandID, itemID, requirementID string) (*entity.Requirement, error) {
	key := brandID + "/" + itemID + "/" + requirementID
	if requirement, ok := l.requirements[key]; ok {
		return requirement, nil
	}

	requirement, err := l.catalogRepo.FindRequirement(ctx, brandID, itemID, requirementID)
	if err != nil && !errors.Is(err, repository.ErrRequirementNotFound) {
		return nil, errors.Wrap(err, "failed to find requirement")
	}
	l.requirements[key] = requirement

	return requirement, nil
}

func (l *reviewLookup) location(ctx context.Context, partnerID, locationID string) (*entity.Location, error) {
	key := partnerID + "/" + locationID
	if location, ok := l.locations[key]; ok {
		return location, nil
	}

	location, err := l.partnerRepo.FindLocation(ctx, partnerID, locationID)
	if err != nil && !errors.Is(err, repository.ErrLocationNotFound) {
		return nil, errors.Wrap(err, "failed to find location")
	}
	l.locations[key] = location

	return location, nil
}
