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

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// CreateCredential persists a new credential.
func (repo *credentialRepository) CreateCredential(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCredential
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.CreatedAt = credentialM.CreatedAt
	credential.UpdatedAt = credentialM.UpdatedAt

	return nil
}

// FindCredentialByEmail retrieves a credential by its normalized email.
func (repo *credentialRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindCredentialByUID retrieves a credential by its identity id.
func (repo *credentialRepository) FindCredentialByUID(ctx context.Context, uid string) (*entity.Credential, error) {
	return repo.findOne(ctx, "uid = ?", uid)
}

// UpdateCredentialClaims replaces the claims of a credential.
func (repo *credentialRepository) UpdateCredentialClaims(ctx context.Context, uid string, claims entity.Claims) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("uid = ?", uid).
		Updates(map[string]any{
			"role":         claims.Role.String(),
			"partner_id":   claims.PartnerID,
			"location_ids": stringSlice(claims.LocationIDs),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update credential claims")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// DeleteCredential removes a credential.
func (repo *credentialRepository) DeleteCredential(ctx context.Context, uid string) error {
	result := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		Delete(&model.CredentialModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete credential")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

func (repo *credentialRepository) findOne(ctx context.Context, query string, arg string) (*entity.Credential, error) {
	var credentialM model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&credentialM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return toCredentialDomain(&credentialM), nil
}

// --- Mapper Functions ---

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		UID:          data.UID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Claims: entity.Claims{
			Role:        entity.Role(data.Role),
			PartnerID:   data.PartnerID,
			LocationIDs: []string(data.LocationIDs),
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		UID:          data.UID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Claims.Role.String(),
		PartnerID:    data.Claims.PartnerID,
		LocationIDs:  stringSlice(data.Claims.LocationIDs),
		CreatedAt:    data.CreatedAt,
	}
}
