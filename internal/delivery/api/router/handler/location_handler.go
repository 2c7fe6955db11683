package handler

import (
	"net/http"

	"photoverify/internal/delivery/api/response"
	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
}

// LocationHandler serves the dashboard, location pages and the public viewer lookup
type LocationHandler struct {
	locationUC usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{locationUC: params.LocationUC}
}

// Dashboard returns the caller's locations with their verification progress
func (h *LocationHandler) Dashboard(c echo.Context) error {
	overviews, err := h.locationUC.Dashboard(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overviews)
}

// ListLocations returns the locations visible to the caller
func (h *LocationHandler) ListLocations(c echo.Context) error {
	locations, err := h.locationUC.ListVisibleLocations(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// GetLocationDetail returns a location with its catalog and per-item progress
func (h *LocationHandler) GetLocationDetail(c echo.Context) error {
	detail, err := h.locationUC.GetLocationDetail(
		c.Request().Context(),
		deliverycontext.GetIdentity(c),
		c.Param("partnerId"),
		c.Param("locationId"),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// GetLocationQR renders the viewer QR code of a location as PNG
func (h *LocationHandler) GetLocationQR(c echo.Context) error {
	png, err := h.locationUC.GenerateLocationQR(
		c.Request().Context(),
		deliverycontext.GetIdentity(c),
		c.Param("partnerId"),
		c.Param("locationId"),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// FindNearby returns locations around a point, nearest first
func (h *LocationHandler) FindNearby(c echo.Context) error {
	var query usecase.NearbyQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nearby query")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	nearby, err := h.locationUC.FindNearbyLocations(c.Request().Context(), deliverycontext.GetIdentity(c), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nearby)
}

// ViewLocation looks a location up by id for the public restaurant viewer
func (h *LocationHandler) ViewLocation(c echo.Context) error {
	location, err := h.locationUC.FindLocationByID(c.Request().Context(), c.Param("locationId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}
