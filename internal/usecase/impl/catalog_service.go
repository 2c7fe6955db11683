package impl

import (
	"context"

	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/domain/repository"
	"photoverify/internal/errors"
	"photoverify/internal/usecase"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{catalogRepo: catalogRepo}
}

// ListBrands returns every brand
func (s *catalogService) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	brands, err := s.catalogRepo.ListBrands(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// GetBrandCatalog returns a brand with its menu items and their requirements
func (s *catalogService) GetBrandCatalog(ctx context.Context, brandID string) (*usecase.BrandCatalog, error) {
	brand, err := s.catalogRepo.FindBrandByID(ctx, brandID)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, domainerrors.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand")
	}

	items, err := s.catalogRepo.ListMenuItems(ctx, brandID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	catalog := &usecase.BrandCatalog{Brand: brand, Items: make([]*usecase.CatalogItem, 0, len(items))}
	for _, item := range items {
		requirements, err := s.catalogRepo.ListRequirements(ctx, brandID, item.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list requirements of item %s", item.ID)
		}
		catalog.Items = append(catalog.Items, &usecase.CatalogItem{Item: item, Requirements: requirements})
	}

	return catalog, nil
}
