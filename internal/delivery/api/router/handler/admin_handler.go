package handler

import (
	"log/slog"
	"net/http"

	"photoverify/internal/delivery/api/response"
	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves provisioning of partners, locations, users and the catalog
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// CreatePartner creates a partner
func (h *AdminHandler) CreatePartner(c echo.Context) error {
	var req usecase.CreatePartnerInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid partner input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	partner, err := h.adminUC.CreatePartner(c.Request().Context(), deliverycontext.GetIdentity(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, partner)
}

// ListPartners returns every partner with its locations
func (h *AdminHandler) ListPartners(c echo.Context) error {
	partners, err := h.adminUC.ListPartnersWithLocations(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, partners)
}

// CreateLocation creates a location under a partner
func (h *AdminHandler) CreateLocation(c echo.Context) error {
	var req usecase.CreateLocationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	location, err := h.adminUC.CreateLocation(c.Request().Context(), deliverycontext.GetIdentity(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, location)
}

// ListUsers returns every stored user profile
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUC.ListUsers(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// CreateUser creates an identity with a temporary password. Arguments are checked by the usecase.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req usecase.CreateUserInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_ARGUMENT", "Invalid user input")
	}

	output, err := h.adminUC.CreateUser(c.Request().Context(), deliverycontext.GetIdentity(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("User created by admin",
		slog.String("uid", output.UID),
		slog.String("role", req.Role.String()),
		slog.String("request_id", deliverycontext.GetRequestID(c)),
	)

	return response.Success(c, http.StatusCreated, output)
}

// UpsertUserProfile writes the profile of an existing identity
func (h *AdminHandler) UpsertUserProfile(c echo.Context) error {
	var req usecase.UpsertUserProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	profile, err := h.adminUC.UpsertUserProfile(c.Request().Context(), deliverycontext.GetIdentity(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// CreateBrand creates a brand
func (h *AdminHandler) CreateBrand(c echo.Context) error {
	var req usecase.CreateBrandInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid brand input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	brand, err := h.adminUC.CreateBrand(c.Request().Context(), deliverycontext.GetIdentity(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, brand)
}

// CreateMenuItem creates a menu item of a brand
func (h *AdminHandler) CreateMenuItem(c echo.Context) error {
	var req usecase.CreateMenuItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	item, err := h.adminUC.CreateMenuItem(c.Request().Context(), deliverycontext.GetIdentity(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// CreateRequirement creates a requirement of a menu item
func (h *AdminHandler) CreateRequirement(c echo.Context) error {
	var req usecase.CreateRequirementInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid requirement input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	requirement, err := h.adminUC.CreateRequirement(c.Request().Context(), deliverycontext.GetIdentity(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, requirement)
}
