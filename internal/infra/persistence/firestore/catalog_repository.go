package firestore

import (
	"context"

	"photoverify/internal/domain/entity"
	"photoverify/internal/domain/repository"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	client *gcfirestore.Client
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(client *gcfirestore.Client) repository.CatalogRepository {
	return &catalogRepository{
		client: client,
	}
}

func (repo *catalogRepository) brandRef(brandID string) *gcfirestore.DocumentRef {
	return repo.client.Collection(collectionBrands).Doc(brandID)
}

func (repo *catalogRepository) itemsRef(brandID string) *gcfirestore.CollectionRef {
	return repo.brandRef(brandID).Collection(collectionMenuItems)
}

func (repo *catalogRepository) requirementsRef(brandID, itemID string) *gcfirestore.CollectionRef {
	return repo.itemsRef(brandID).Doc(itemID).Collection(collectionRequirements)
}

func (repo *catalogRepository) SaveBrand(ctx context.Context, brand *entity.Brand) error {
	categories := make([]string, 0, len(brand.Categories))
	for _, category := range brand.Categories {
		categories = append(categories, string(category))
	}

	fields := map[string]any{
		"name":       brand.Name,
		"categories": categories,
		"isActive":   brand.IsActive,
	}
	setCreatedAt(fields, brand.CreatedAt)

	if _, err := repo.brandRef(brand.ID).Set(ctx, fields, gcfirestore.MergeAll); err != nil {
		return errors.Wrap(err, "failed to save brand")
	}

	return nil
}

func (repo *catalogRepository) FindBrandByID(ctx context.Context, brandID string) (*entity.Brand, error) {
	snap, err := repo.brandRef(brandID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by ID")
	}

	var doc brandDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode brand")
	}

	return toBrandDomain(snap.Ref.ID, &doc), nil
}

func (repo *catalogRepository) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	snaps, err := repo.client.Collection(collectionBrands).
		OrderBy(gcfirestore.DocumentID, gcfirestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	brands := make([]*entity.Brand, 0, len(snaps))
	for _, snap := range snaps {
		var doc brandDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode brand %s", snap.Ref.ID)
		}
		brands = append(brands, toBrandDomain(snap.Ref.ID, &doc))
	}

	return brands, nil
}

func (repo *catalogRepository) SaveMenuItem(ctx context.Context, item *entity.MenuItem) error {
	doc := &menuItemDoc{
		Name:        item.Name,
		Category:    string(item.Category),
		Description: item.Description,
		Image:       item.Image,
		Order:       item.Order,
		IsActive:    item.IsActive,
	}

	if _, err := repo.itemsRef(item.BrandID).Doc(item.ID).Set(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to save menu item")
	}

	return nil
}

func (repo *catalogRepository) FindMenuItem(ctx context.Context, brandID, itemID string) (*entity.MenuItem, error) {
	snap, err := repo.itemsRef(brandID).Doc(itemID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	var doc menuItemDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode menu item")
	}

	return toMenuItemDomain(brandID, snap.Ref.ID, &doc), nil
}

func (repo *catalogRepository) ListMenuItems(ctx context.Context, brandID string) ([]*entity.MenuItem, error) {
	snaps, err := repo.itemsRef(brandID).
		OrderBy("order", gcfirestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(snaps))
	for _, snap := range snaps {
		var doc menuItemDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode menu item %s", snap.Ref.ID)
		}
		items = append(items, toMenuItemDomain(brandID, snap.Ref.ID, &doc))
	}

	return items, nil
}

func (repo *catalogRepository) SaveRequirement(ctx context.Context, requirement *entity.Requirement) error {
	doc := &requirementDoc{
		Title:           requirement.Title,
		AngleHint:       requirement.AngleHint,
		ExampleImageURL: requirement.ExampleImageURL,
		Checklist:       nonNil(requirement.Checklist),
	}

	ref := repo.requirementsRef(requirement.BrandID, requirement.ItemID).Doc(requirement.ID)
	if _, err := ref.Set(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to save requirement")
	}

	return nil
}

func (repo *catalogRepository) FindRequirement(
	ctx context.Context,
	brandID, itemID, requirementID string,
) (*entity.Requirement, error) {
	snap, err := repo.requirementsRef(brandID, itemID).Doc(requirementID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrRequirementNotFound
		}

		return nil, errors.Wrap(err, "failed to find requirement")
	}

	var doc requirementDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode requirement")
	}

	return toRequirementDomain(brandID, itemID, snap.Ref.ID, &doc), nil
}

func (repo *catalogRepository) ListRequirements(ctx context.Context, brandID, itemID string) ([]*entity.Requirement, error) {
	snaps, err := repo.requirementsRef(brandID, itemID).
		OrderBy(gcfirestore.DocumentID, gcfirestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requirements")
	}

	requirements := make([]*entity.Requirement, 0, len(snaps))
	for _, snap := range snaps {
		var doc requirementDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode requirement %s", snap.Ref.ID)
		}
		requirements = append(requirements, toRequirementDomain(brandID, itemID, snap.Ref.ID, &doc))
	}

	return requirements, nil
}
