package handler

import (
	"mime"
	"net/http"

	"photoverify/internal/delivery/api/response"
	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HeaderIdempotencyKey lets clients retry an upload without creating a second submission
const HeaderIdempotencyKey = "Idempotency-Key"

const photoFormField = "file"

// SubmissionHandlerParams holds dependencies for SubmissionHandler, injected by Fx.
type SubmissionHandlerParams struct {
	fx.In

	SubmissionUC usecase.SubmissionUsecase
}

// SubmissionHandler serves photo uploads and the partner's view of submissions
type SubmissionHandler struct {
	submissionUC usecase.SubmissionUsecase
}

// NewSubmissionHandler is the constructor for SubmissionHandler
func NewSubmissionHandler(params SubmissionHandlerParams) *SubmissionHandler {
	return &SubmissionHandler{submissionUC: params.SubmissionUC}
}

// Upload handles a multipart photo upload for one requirement of a location
func (h *SubmissionHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile(photoFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return response.HandleAppError(c, domainerrors.ErrFileRequired)
		}

		return response.BindingError(c, "INVALID_INPUT", "Invalid multipart upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	input := &usecase.UploadInput{
		Key: entity.SubmissionKey{
			PartnerID:     c.FormValue("partnerId"),
			LocationID:    c.FormValue("locationId"),
			BrandID:       c.FormValue("brandId"),
			ItemID:        c.FormValue("itemId"),
			RequirementID: c.FormValue("requirementId"),
		},
		FileName:       fileHeader.Filename,
		ContentType:    fileHeader.Header.Get(echo.HeaderContentType),
		Size:           fileHeader.Size,
		Body:           file,
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
	}

	submission, err := h.submissionUC.Upload(c.Request().Context(), deliverycontext.GetIdentity(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, submission)
}

// GetSubmission returns one submission
func (h *SubmissionHandler) GetSubmission(c echo.Context) error {
	submission, err := h.submissionUC.GetSubmission(c.Request().Context(), deliverycontext.GetIdentity(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, submission)
}

// GetLatest returns the authoritative submission for a requirement of a location
func (h *SubmissionHandler) GetLatest(c echo.Context) error {
	var key entity.SubmissionKey
	if err := c.Bind(&key); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid submission key")
	}

	submission, err := h.submissionUC.LatestSubmissionFor(c.Request().Context(), deliverycontext.GetIdentity(c), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, submission)
}

// ListRequirementStatuses returns each requirement of a menu item with its latest submission
func (h *SubmissionHandler) ListRequirementStatuses(c echo.Context) error {
	statuses, err := h.submissionUC.RequirementStatuses(
		c.Request().Context(),
		deliverycontext.GetIdentity(c),
		c.Param("partnerId"),
		c.Param("locationId"),
		c.Param("itemId"),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, statuses)
}

// GetPhoto streams the stored photo of a submission
func (h *SubmissionHandler) GetPhoto(c echo.Context) error {
	photo, err := h.submissionUC.OpenPhoto(c.Request().Context(), deliverycontext.GetIdentity(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer photo.Body.Close()

	if photo.FileName != "" {
		c.Response().Header().Set(echo.HeaderContentDisposition,
			mime.FormatMediaType("inline", map[string]string{"filename": photo.FileName}))
	}

	return c.Stream(http.StatusOK, photo.ContentType, photo.Body)
}
