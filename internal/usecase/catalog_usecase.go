package usecase

import (
	"context"

	"photoverify/internal/domain/entity"
)

// CatalogItem is a menu item with its requirements.
type CatalogItem struct {
	Item         *entity.MenuItem      `json:"item"`
	Requirements []*entity.Requirement `json:"requirements"`
}

// BrandCatalog is a brand with its full menu.
type BrandCatalog struct {
	Brand *entity.Brand  `json:"brand"`
	Items []*CatalogItem `json:"items"`
}

// CatalogUsecase defines read access to brands and their menus.
type CatalogUsecase interface {
	ListBrands(ctx context.Context) ([]*entity.Brand, error)
	GetBrandCatalog(ctx context.Context, brandID string) (*BrandCatalog, error)
}
