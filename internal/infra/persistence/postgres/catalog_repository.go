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

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

func (repo *catalogRepository) SaveBrand(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "categories", "is_active", "updated_at"}),
		}).
		Create(brandM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save brand")
	}

	brand.CreatedAt = brandM.CreatedAt

	return nil
}

func (repo *catalogRepository) FindBrandByID(ctx context.Context, brandID string) (*entity.Brand, error) {
	var brandM model.BrandModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", brandID).
		First(&brandM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by ID")
	}

	return toBrandDomain(&brandM), nil
}

func (repo *catalogRepository) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	var brandModels []*model.BrandModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	brands := make([]*entity.Brand, 0, len(brandModels))
	for _, brandM := range brandModels {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, nil
}

func (repo *catalogRepository) SaveMenuItem(ctx context.Context, item *entity.MenuItem) error {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "brand_id"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "category", "description", "image", "sort_order", "is_active", "updated_at",
			}),
		}).
		Create(fromMenuItemDomain(item)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save menu item")
	}

	return nil
}

func (repo *catalogRepository) FindMenuItem(ctx context.Context, brandID, itemID string) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Where("brand_id = ? AND id = ?", brandID, itemID).
		First(&itemM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	return toMenuItemDomain(&itemM), nil
}

func (repo *catalogRepository) ListMenuItems(ctx context.Context, brandID string) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("sort_order ASC, id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items, nil
}

func (repo *catalogRepository) SaveRequirement(ctx context.Context, requirement *entity.Requirement) error {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "brand_id"}, {Name: "item_id"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "angle_hint", "example_image_url", "checklist", "updated_at",
			}),
		}).
		Create(fromRequirementDomain(requirement)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save requirement")
	}

	return nil
}

func (repo *catalogRepository) FindRequirement(
	ctx context.Context,
	brandID, itemID, requirementID string,
) (*entity.Requirement, error) {
	var requirementM model.RequirementModel

	if err := repo.db.WithContext(ctx).
		Where("brand_id = ? AND item_id = ? AND id = ?", brandID, itemID, requirementID).
		First(&requirementM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrRequirementNotFound
		}

		return nil, errors.Wrap(err, "failed to find requirement")
	}

	return toRequirementDomain(&requirementM), nil
}

func (repo *catalogRepository) ListRequirements(ctx context.Context, brandID, itemID string) ([]*entity.Requirement, error) {
	var requirementModels []*model.RequirementModel

	if err := repo.db.WithContext(ctx).
		Where("brand_id = ? AND item_id = ?", brandID, itemID).
		Order("id ASC").
		Find(&requirementModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requirements")
	}

	requirements := make([]*entity.Requirement, 0, len(requirementModels))
	for _, requirementM := range requirementModels {
		requirements = append(requirements, toRequirementDomain(requirementM))
	}

	return requirements, nil
}

// --- Mapper Functions ---

func toBrandDomain(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	categories := make([]entity.Category, 0, len(data.Categories))
	for _, category := range data.Categories {
		categories = append(categories, entity.Category(category))
	}

	return &entity.Brand{
		ID:         data.ID,
		Name:       data.Name,
		Categories: categories,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
	}
}

func fromBrandDomain(data *entity.Brand) *model.BrandModel {
	if data == nil {
		return nil
	}

	categories := make([]string, 0, len(data.Categories))
	for _, category := range data.Categories {
		categories = append(categories, string(category))
	}

	return &model.BrandModel{
		ID:         data.ID,
		Name:       data.Name,
		Categories: stringSlice(categories),
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
	}
}

func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:          data.ID,
		BrandID:     data.BrandID,
		Name:        data.Name,
		Category:    entity.Category(data.Category),
		Description: data.Description,
		Image:       data.Image,
		Order:       data.SortOrder,
		IsActive:    data.IsActive,
	}
}

func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		BrandID:     data.BrandID,
		ID:          data.ID,
		Name:        data.Name,
		Category:    string(data.Category),
		Description: data.Description,
		Image:       data.Image,
		SortOrder:   data.Order,
		IsActive:    data.IsActive,
	}
}

func toRequirementDomain(data *model.RequirementModel) *entity.Requirement {
	if data == nil {
		return nil
	}

	return &entity.Requirement{
		ID:              data.ID,
		BrandID:         data.BrandID,
		ItemID:          data.ItemID,
		Title:           data.Title,
		AngleHint:       data.AngleHint,
		ExampleImageURL: data.ExampleImageURL,
		Checklist:       []string(data.Checklist),
	}
}

func fromRequirementDomain(data *entity.Requirement) *model.RequirementModel {
	if data == nil {
		return nil
	}

	return &model.RequirementModel{
		BrandID:         data.BrandID,
		ItemID:          data.ItemID,
		ID:              data.ID,
		Title:           data.Title,
		AngleHint:       data.AngleHint,
		ExampleImageURL: data.ExampleImageURL,
		Checklist:       stringSlice(data.Checklist),
	}
}
