package handler

import (
	"net/http"

	"photoverify/internal/delivery/api/response"
	"photoverify/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves brands and their menus
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// ListBrands returns every brand
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.catalogUC.ListBrands(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brands)
}

// GetBrandCatalog returns a brand with its menu items and requirements
func (h *CatalogHandler) GetBrandCatalog(c echo.Context) error {
	catalog, err := h.catalogUC.GetBrandCatalog(c.Request().Context(), c.Param("brandId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, catalog)
}
