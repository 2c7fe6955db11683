// Package response writes the JSON envelope every API endpoint answers with.
package response

import (
	"net/http"

	"photoverify/internal/delivery/api/validator"
	deliverycontext "photoverify/internal/delivery/context"
	domainerrors "photoverify/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const codeValidationFailed = "VALIDATION_FAILED"

// SuccessResponse is {"data": ..., "meta": {...}}
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is {"error": {...}, "meta": {...}}
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details are withheld on 401, 403 and 5xx.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// BindingError answers a request whose body, path or query could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// ValidationError answers 400 with a field -> failed rule map when err carries one.
func ValidationError(c echo.Context, err error) error {
	if fields := validator.FieldErrors(err); fields != nil {
		return Error(c, http.StatusBadRequest, codeValidationFailed, "Request validation failed", fields)
	}

	return Error(c, http.StatusBadRequest, codeValidationFailed, err.Error(), nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes domain errors and hands anything else to the error middleware.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}
