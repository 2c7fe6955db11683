package postgres

import (
	"context"

	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/domain/repository"
	"photoverify/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// submissionRepository implements the repository.SubmissionRepository interface.
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository is the constructor for submissionRepository.
func NewSubmissionRepository(db *gorm.DB) repository.SubmissionRepository {
	return &submissionRepository{
		db: db,
	}
}

// CreateSubmission inserts a new submission row.
func (repo *submissionRepository) CreateSubmission(ctx context.Context, submission *entity.Submission) error {
	submissionM := fromSubmissionDomain(submission)

	if err := repo.db.WithContext(ctx).Create(submissionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubmission
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create submission")
	}

	submission.CreatedAt = submissionM.CreatedAt

	return nil
}

// FindSubmissionByID retrieves a submission by its id.
func (repo *submissionRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*entity.Submission, error) {
	var submissionM model.SubmissionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", submissionID).
		First(&submissionM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find submission by ID")
	}

	return toSubmissionDomain(&submissionM), nil
}

// FindSubmissions retrieves the submissions matching the filter, newest first.
func (repo *submissionRepository) FindSubmissions(
	ctx context.Context,
	filter entity.SubmissionFilter,
) ([]*entity.Submission, error) {
	query := repo.db.WithContext(ctx).Model(&model.SubmissionModel{})

	if filter.PartnerID != "" {
		query = query.Where("partner_id = ?", filter.PartnerID)
	}
	if filter.LocationID != "" {
		query = query.Where("location_id = ?", filter.LocationID)
	}
	if filter.BrandID != "" {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if filter.ItemID != "" {
		query = query.Where("item_id = ?", filter.ItemID)
	}
	if filter.RequirementID != "" {
		query = query.Where("requirement_id = ?", filter.RequirementID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var submissionModels []*model.SubmissionModel
	if err := query.Order("created_at DESC, id DESC").Find(&submissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find submissions")
	}

	submissions := make([]*entity.Submission, 0, len(submissionModels))
	for _, submissionM := range submissionModels {
		submissions = append(submissions, toSubmissionDomain(submissionM))
	}

	return submissions, nil
}

// DecideSubmission applies the decision only while the row is still submitted.
func (repo *submissionRepository) DecideSubmission(
	ctx context.Context,
	submissionID string,
	decision entity.ReviewDecision,
) (*entity.Submission, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("id = ? AND status = ?", submissionID, string(entity.SubmissionStatusSubmitted)).
		Updates(map[string]any{
			"status":           string(decision.Status),
			"review_comment":   decision.Comment,
			"reviewer_user_id": decision.ReviewerUserID,
			"reviewed_at":      decision.ReviewedAt,
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to decide submission")
	}

	submission, err := repo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrSubmissionNotPending
	}

	return submission, nil
}

// --- Mapper Functions ---

func toSubmissionDomain(data *model.SubmissionModel) *entity.Submission {
	if data == nil {
		return nil
	}

	return &entity.Submission{
		ID:             data.ID,
		PartnerID:      data.PartnerID,
		LocationID:     data.LocationID,
		BrandID:        data.BrandID,
		ItemID:         data.ItemID,
		RequirementID:  data.RequirementID,
		Status:         entity.SubmissionStatus(data.Status),
		FileName:       data.FileName,
		PhotoURL:       data.PhotoURL,
		StoragePath:    data.StoragePath,
		UploaderUserID: data.UploaderUserID,
		ReviewComment:  data.ReviewComment,
		ReviewerUserID: data.ReviewerUserID,
		CreatedAt:      data.CreatedAt,
		ReviewedAt:     data.ReviewedAt,
	}
}

func fromSubmissionDomain(data *entity.Submission) *model.SubmissionModel {
	if data == nil {
		return nil
	}

	return &model.SubmissionModel{
		ID:             data.ID,
		PartnerID:      data.PartnerID,
		LocationID:     data.LocationID,
		BrandID:        data.BrandID,
		ItemID:         data.ItemID,
		RequirementID:  data.RequirementID,
		Status:         string(data.Status),
		FileName:       data.FileName,
		PhotoURL:       data.PhotoURL,
		StoragePath:    data.StoragePath,
		UploaderUserID: data.UploaderUserID,
		ReviewComment:  data.ReviewComment,
		ReviewerUserID: data.ReviewerUserID,
		CreatedAt:      data.CreatedAt,
		ReviewedAt:     data.ReviewedAt,
	}
}
