package handler

import (
	"net/http"

	"photoverify/internal/delivery/api/response"
	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
}

// ReviewHandler serves the review queue
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{reviewUC: params.ReviewUC}
}

// ListPending returns submissions awaiting a decision, oldest first
func (h *ReviewHandler) ListPending(c echo.Context) error {
	pending, err := h.reviewUC.ListPending(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pending)
}

// Decide approves or rejects a submission
func (h *ReviewHandler) Decide(c echo.Context) error {
	var req usecase.DecideInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	submission, err := h.reviewUC.Decide(c.Request().Context(), deliverycontext.GetIdentity(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, submission)
}
