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

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthHandler serves sign-in and the caller's own identity
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Login handles password sign-in
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.sessionUC.Login(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Me returns the authenticated caller and their stored profile
func (h *AuthHandler) Me(c echo.Context) error {
	output, err := h.sessionUC.Me(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
