package middleware

import (
	"log/slog"
	"net/http"

	"thoughts/internal/delivery/http/response"
	domainerrors "thoughts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware translates errors bubbling out of handlers into the API
// envelope, installed as Echo's HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Application errors carry their own status and client message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// The listing contract promises response:[] rather than null when
		// the query matched nothing.
		var payload any
		if errors.Is(err, domainerrors.ErrNoThoughtsFound) {
			payload = []any{}
		}

		_ = response.Failure(c, appErr.HTTPCode(), payload, appErr.Message())

		return
	}

	// Echo's own errors (404 on unknown routes, method not allowed, ...).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, _ := httpErr.Message.(string)
		if message == "" {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Failure(c, httpErr.Code, nil, message)

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Failure(c, http.StatusInternalServerError, nil, "Internal server error")
}
