package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// errorEnvelope is the error response body shared by every endpoint.
type errorEnvelope struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Name       string `json:"name"`
}

// NewErrorHandler builds the echo HTTPErrorHandler that maps domain error
// kinds to HTTP statuses. Unknown errors are logged with full detail and
// masked as a generic server error so internals never leak to clients.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http_error_handler")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		statusCode, name, message := classify(err)
		if statusCode == http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "unhandled error",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err)
			message = "internal server error"
		}

		writeErr := c.JSON(statusCode, errorEnvelope{
			Status:     "error",
			StatusCode: statusCode,
			Message:    message,
			Name:       name,
		})
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response",
				"error", writeErr)
		}
	}
}

// classify maps an error to its HTTP status, error name, and client message.
// Missing entities map to 422, preserving the wire contract of the service
// this one replaces.
func classify(err error) (int, string, string) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, http.StatusText(httpErr.Code), messageOf(httpErr)
	}

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrOrderIsNotAssigned):
		return http.StatusBadRequest, "BAD_REQUEST", err.Error()
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", err.Error()
	case errors.Is(err, errs.ErrAccessForbidden):
		return http.StatusForbidden, "FORBIDDEN", err.Error()
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict, "CONFLICT", err.Error()
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, services.ErrNoAvailablePartners):
		return http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY", err.Error()
	default:
		return http.StatusInternalServerError, "SERVER_ERROR", err.Error()
	}
}

func messageOf(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}
	return http.StatusText(httpErr.Code)
}
