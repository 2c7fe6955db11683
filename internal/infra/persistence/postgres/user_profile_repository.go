package postgres

import (
	"context"

	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/domain/repository"
	"photoverify/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userProfileRepository implements the repository.UserProfileRepository interface.
type userProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository is the constructor for userProfileRepository.
func NewUserProfileRepository(db *gorm.DB) repository.UserProfileRepository {
	return &userProfileRepository{
		db: db,
	}
}

// SaveUserProfile creates the profile or merges it into the existing record.
func (repo *userProfileRepository) SaveUserProfile(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromUserProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email", "role", "partner_id", "location_ids", "brands", "updated_at",
			}),
		}).
		Create(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save user profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindUserProfileByID retrieves the profile of an identity.
func (repo *userProfileRepository) FindUserProfileByID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", uid).
		First(&profileM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile by ID")
	}

	return toUserProfileDomain(&profileM), nil
}

// ListUserProfiles retrieves every profile ordered by email.
func (repo *userProfileRepository) ListUserProfiles(ctx context.Context) ([]*entity.UserProfile, error) {
	var profileModels []*model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Order("email ASC, id ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user profiles")
	}

	profiles := make([]*entity.UserProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toUserProfileDomain(profileM))
	}

	return profiles, nil
}

// --- Mapper Functions ---

func toUserProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		ID:          data.ID,
		Email:       data.Email,
		Role:        entity.Role(data.Role),
		PartnerID:   data.PartnerID,
		LocationIDs: []string(data.LocationIDs),
		Brands:      []string(data.Brands),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromUserProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	if data == nil {
		return nil
	}

	return &model.UserProfileModel{
		ID:          data.ID,
		Email:       data.Email,
		Role:        data.Role.String(),
		PartnerID:   data.PartnerID,
		LocationIDs: stringSlice(data.LocationIDs),
		Brands:      stringSlice(data.Brands),
		CreatedAt:   data.CreatedAt,
	}
}
