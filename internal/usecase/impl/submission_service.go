package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"
	"time"

	"photoverify/config"
	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/domain/constants"
	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/domain/repository"
	"photoverify/internal/domain/service"
	"photoverify/internal/errors"
	"photoverify/internal/infra/metrics"
	"photoverify/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
)

const (
	defaultMaxUploadBytes = 10 * bytes.MB
	defaultIdempotencyTTL = 24 * time.Hour
	defaultContentType    = "application/octet-stream"
)

type submissionService struct {
	submissionRepo repository.SubmissionRepository
	partnerRepo    repository.PartnerRepository
	catalogRepo    repository.CatalogRepository
	storage        service.BlobStorage
	idempotency    service.IdempotencyStore
	publisher      service.EventPublisher
	metrics        *metrics.Recorder
	maxUploadBytes int64
	idempotencyTTL time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

// SubmissionServiceParams holds dependencies for SubmissionService, injected by Fx.
type SubmissionServiceParams struct {
	fx.In

	SubmissionRepo repository.SubmissionRepository
	PartnerRepo    repository.PartnerRepository
	CatalogRepo    repository.CatalogRepository
	Storage        service.BlobStorage
	Idempotency    service.IdempotencyStore `optional:"true"`
	Publisher      service.EventPublisher
	Metrics        *metrics.Recorder `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(params SubmissionServiceParams) usecase.SubmissionUsecase {
	maxUploadBytes := int64(defaultMaxUploadBytes)
	idempotencyTTL := defaultIdempotencyTTL
	if params.Config != nil {
		if params.Config.Storage != nil && params.Config.Storage.MaxUploadSize != "" {
			if parsed, err := bytes.Parse(params.Config.Storage.MaxUploadSize); err == nil && parsed > 0 {
				maxUploadBytes = parsed
			} else {
				params.Logger.Warn("Invalid max upload size, using default",
					slog.String("value", params.Config.Storage.MaxUploadSize))
			}
		}
		if params.Config.Redis != nil && params.Config.Redis.IdempotencyTTL > 0 {
			idempotencyTTL = params.Config.Redis.IdempotencyTTL
		}
	}

	return &submissionService{
		submissionRepo: params.SubmissionRepo,
		partnerRepo:    params.PartnerRepo,
		catalogRepo:    params.CatalogRepo,
		storage:        params.Storage,
		idempotency:    params.Idempotency,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		maxUploadBytes: maxUploadBytes,
		idempotencyTTL: idempotencyTTL,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (s *submissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Upload stores the photo and creates one submitted submission for it.
// A repeated idempotency key of the same caller returns the submission created the first time.
func (s *submissionService) Upload(
	ctx context.Context,
	identity *entity.Identity,
	input *usecase.UploadInput,
) (*entity.Submission, error) {
	if err := s.validateUpload(input); err != nil {
		return nil, err
	}

	key := input.Key
	if err := requireLocationAccess(identity, key.PartnerID, key.LocationID); err != nil {
		return nil, err
	}

	scope := idempotencyScope(identity, input.IdempotencyKey)
	if existing, err := s.replay(ctx, scope); err != nil || existing != nil {
		return existing, err
	}

	location, err := s.findLocation(ctx, key.PartnerID, key.LocationID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(location.BrandIDs, key.BrandID) {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("brand " + key.BrandID + " is not served at location " + key.LocationID)
	}
	if _, err := s.catalogRepo.FindRequirement(ctx, key.BrandID, key.ItemID, key.RequirementID); err != nil {
		if errors.Is(err, repository.ErrRequirementNotFound) {
			return nil, domainerrors.ErrRequirementNotFound
		}

		return nil, errors.Wrap(err, "failed to find requirement")
	}

	submissionID := uuid.NewString()
	if !s.reserve(ctx, scope, submissionID) {
		return s.replayWinner(ctx, scope)
	}

	submission, err := s.store(ctx, identity, input, submissionID)
	if err != nil {
		s.release(ctx, scope)

		return nil, err
	}

	s.metrics.SubmissionCreated(submission.BrandID)
	publishSubmissionEvent(ctx, s.log(ctx), s.publisher, constants.EventSubmissionCreated, submission, identity.UID, submission.CreatedAt)

	s.log(ctx).Info("Submission created",
		slog.String("submission_id", submission.ID),
		slog.String("location_id", submission.LocationID),
		slog.String("requirement_id", submission.RequirementID))

	return submission, nil
}

// store writes the photo and then the submission row pointing at it.
func (s *submissionService) store(
	ctx context.Context,
	identity *entity.Identity,
	input *usecase.UploadInput,
	submissionID string,
) (*entity.Submission, error) {
	key := input.Key
	now := s.now().UTC()
	fileName := sanitizeFileName(input.FileName)
	storagePath := fmt.Sprintf("submissions/%s/%s/%s/%s/%s/%d_%s_%s",
		key.BrandID, key.ItemID, key.RequirementID, key.PartnerID, key.LocationID,
		now.UnixMilli(), identity.UID, fileName)

	contentType := input.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	if err := s.storage.Put(ctx, storagePath, contentType, input.Body); err != nil {
		s.log(ctx).Error("Failed to store photo", slog.String("path", storagePath), slog.Any("error", err))

		return nil, domainerrors.ErrUploadFailed.WrapMessage(err.Error())
	}

	submission := &entity.Submission{
		ID:             submissionID,
		PartnerID:      key.PartnerID,
		LocationID:     key.LocationID,
		BrandID:        key.BrandID,
		ItemID:         key.ItemID,
		RequirementID:  key.RequirementID,
		Status:         entity.SubmissionStatusSubmitted,
		FileName:       fileName,
		StoragePath:    storagePath,
		UploaderUserID: identity.UID,
		CreatedAt:      now,
	}
	submission.PhotoURL = s.photoURL(ctx, submission)

	if err := s.submissionRepo.CreateSubmission(ctx, submission); err != nil {
		return nil, errors.Wrap(err, "failed to create submission")
	}

	return submission, nil
}

func (s *submissionService) validateUpload(input *usecase.UploadInput) error {
	if input == nil || !input.Key.IsComplete() {
		return domainerrors.ErrInvalidArgument.WrapMessage("partnerId, locationId, brandId, itemId and requirementId are required")
	}
	if input.Body == nil || input.Size <= 0 {
		return domainerrors.ErrFileRequired
	}
	if input.Size > s.maxUploadBytes {
		return domainerrors.ErrFileTooLarge
	}
	if input.ContentType != "" && !strings.HasPrefix(input.ContentType, "image/") {
		return domainerrors.ErrInvalidArgument.WrapMessage("photo must be an image")
	}

	return nil
}

// photoURL is the public URL of the stored photo, or the API route that streams it.
// Both stay valid for the lifetime of the submission.
func (s *submissionService) photoURL(ctx context.Context, submission *entity.Submission) string {
	url, err := s.storage.URL(ctx, submission.StoragePath)
	if err == nil {
		return url
	}
	if !errors.Is(err, service.ErrURLUnsupported) {
		s.log(ctx).Warn("Failed to resolve photo URL", slog.String("path", submission.StoragePath), slog.Any("error", err))
	}

	return "/api/v1/submissions/" + submission.ID + "/photo"
}

// idempotencyScope namespaces the key per caller. It is empty when the request carries no key.
func idempotencyScope(identity *entity.Identity, key string) string {
	if key == "" {
		return ""
	}

	return identity.UID + ":" + key
}

// replay returns the submission remembered under scope. A key whose submission is not
// written yet belongs to an upload still in progress.
func (s *submissionService) replay(ctx context.Context, scope string) (*entity.Submission, error) {
	if s.idempotency == nil || scope == "" {
		return nil, nil
	}

	submissionID, found, err := s.idempotency.Lookup(ctx, scope)
	if err != nil {
		s.log(ctx).Warn("Idempotency lookup failed", slog.Any("error", err))

		return nil, nil
	}
	if !found {
		return nil, nil
	}

	submission, err := s.submissionRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, domainerrors.ErrUploadInProgress
		}

		return nil, errors.Wrap(err, "failed to find idempotent submission")
	}

	s.log(ctx).Info("Replaying idempotent upload", slog.String("submission_id", submissionID))

	return submission, nil
}

// reserve claims scope for submissionID before anything is written.
// A store failure degrades to an unreserved upload.
func (s *submissionService) reserve(ctx context.Context, scope, submissionID string) bool {
	if s.idempotency == nil || scope == "" {
		return true
	}

	reserved, err := s.idempotency.Remember(ctx, scope, submissionID, s.idempotencyTTL)
	if err != nil {
		s.log(ctx).Warn("Failed to reserve idempotency key", slog.Any("error", err))

		return true
	}

	return reserved
}

// replayWinner answers a request that lost the reservation with the winner's submission.
func (s *submissionService) replayWinner(ctx context.Context, scope string) (*entity.Submission, error) {
	winner, err := s.replay(ctx, scope)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, domainerrors.ErrUploadInProgress
	}

	return winner, nil
}

// release frees a reservation whose upload failed so the client can retry with the same key.
func (s *submissionService) release(ctx context.Context, scope string) {
	if s.idempotency == nil || scope == "" {
		return
	}

	if err := s.idempotency.Forget(ctx, scope); err != nil {
		s.log(ctx).Warn("Failed to release idempotency key", slog.Any("error", err))
	}
}

// GetSubmission returns a submission of a location the caller may access
func (s *submissionService) GetSubmission(
	ctx context.Context,
	identity *entity.Identity,
	submissionID string,
) (*entity.Submission, error) {
	if err := requireAuthenticated(identity); err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, domainerrors.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find submission")
	}

	if err := requireLocationAccess(identity, submission.PartnerID, submission.LocationID); err != nil {
		return nil, err
	}

	return submission, nil
}

// LatestSubmissionFor returns the most recent submission for the key
func (s *submissionService) LatestSubmissionFor(
	ctx context.Context,
	identity *entity.Identity,
	key entity.SubmissionKey,
) (*entity.Submission, error) {
	if !key.IsComplete() {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("partnerId, locationId, brandId, itemId and requirementId are required")
	}
	if err := requireLocationAccess(identity, key.PartnerID, key.LocationID); err != nil {
		return nil, err
	}

	submissions, err := s.submissionRepo.FindSubmissions(ctx, entity.FilterForKey(key))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find submissions")
	}

	latest := entity.LatestSubmission(submissions)
	if latest == nil {
		return nil, domainerrors.ErrSubmissionNotFound
	}

	return latest, nil
}

// RequirementStatuses returns each requirement of the item with the status of its latest submission
func (s *submissionService) RequirementStatuses(
	ctx context.Context,
	identity *entity.Identity,
	partnerID, locationID, itemID string,
) ([]*usecase.RequirementStatus, error) {
	if err := requireLocationAccess(identity, partnerID, locationID); err != nil {
		return nil, err
	}

	location, err := s.findLocation(ctx, partnerID, locationID)
	if err != nil {
		return nil, err
	}

	brandID := location.PrimaryBrandID()
	if brandID == "" {
		return []*usecase.RequirementStatus{}, nil
	}

	if _, err := s.catalogRepo.FindMenuItem(ctx, brandID, itemID); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	requirements, err := s.catalogRepo.ListRequirements(ctx, brandID, itemID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requirements")
	}

	submissions, err := s.submissionRepo.FindSubmissions(ctx, entity.SubmissionFilter{
		PartnerID:  partnerID,
		LocationID: locationID,
		BrandID:    brandID,
		ItemID:     itemID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find submissions")
	}

	byRequirement := make(map[string][]*entity.Submission)
	for _, submission := range submissions {
		byRequirement[submission.RequirementID] = append(byRequirement[submission.RequirementID], submission)
	}

	statuses := make([]*usecase.RequirementStatus, 0, len(requirements))
	for _, requirement := range requirements {
		status := &usecase.RequirementStatus{Requirement: requirement, Status: entity.SubmissionStatusNone}
		if latest := entity.LatestSubmission(byRequirement[requirement.ID]); latest != nil {
			status.Status = latest.Status
			status.Latest = latest
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// OpenPhoto streams the stored photo of a submission
func (s *submissionService) OpenPhoto(ctx context.Context, identity *entity.Identity, submissionID string) (*usecase.Photo, error) {
	submission, err := s.GetSubmission(ctx, identity, submissionID)
	if err != nil {
		return nil, err
	}

	body, contentType, err := s.storage.Open(ctx, submission.StoragePath)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, domainerrors.ErrSubmissionNotFound.WrapMessage("photo not found")
		}

		return nil, errors.Wrap(err, "failed to open photo")
	}

	return &usecase.Photo{Body: body, ContentType: contentType, FileName: submission.FileName}, nil
}

func (s *submissionService) findLocation(ctx context.Context, partnerID, locationID string) (*entity.Location, error) {
	location, err := s.partnerRepo.FindLocation(ctx, partnerID, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return location, nil
}

// sanitizeFileName keeps the base name of an uploaded file so it cannot add path segments.
func sanitizeFileName(name string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "photo"
	}

	return base
}

// publishSubmissionEvent emits a submission event. Publishing is best effort: failures are logged.
func publishSubmissionEvent(
	ctx context.Context,
	logger *slog.Logger,
	publisher service.EventPublisher,
	eventType string,
	submission *entity.Submission,
	actorUserID string,
	occurredAt time.Time,
) {
	if publisher == nil {
		return
	}

	event := &service.SubmissionEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		SubmissionID:  submission.ID,
		PartnerID:     submission.PartnerID,
		LocationID:    submission.LocationID,
		BrandID:       submission.BrandID,
		ItemID:        submission.ItemID,
		RequirementID: submission.RequirementID,
		Status:        string(submission.Status),
		ReviewComment: submission.ReviewComment,
		ActorUserID:   actorUserID,
		OccurredAt:    occurredAt,
	}
	if err := publisher.PublishSubmissionEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish submission event",
			slog.String("event_type", eventType),
			slog.String("submission_id", submission.ID),
			slog.Any("error", err))
	}
}
