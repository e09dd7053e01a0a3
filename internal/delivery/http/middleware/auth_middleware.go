// Package middleware contains the Echo middleware of the HTTP delivery.
package middleware

import (
	"log/slog"
	"net/http"

	"thoughts/internal/domain/entity"
	"thoughts/internal/domain/repository"
	"thoughts/internal/domain/service"
	"thoughts/internal/errors"

	"github.com/labstack/echo/v4"
)

// userContextKey is where the authenticated user is stored on the Echo context.
const userContextKey = "authUser"

// AuthMiddleware resolves the Authorization header to a user before
// protected handlers run. The header carries the credential verbatim, with
// no scheme prefix.
type AuthMiddleware struct {
	verifier service.CredentialVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.CredentialVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate validates the presented credential and attaches the resolved
// user to the request context. A missing or unresolvable credential yields
// the fixed 401 body; an unexpected store failure yields 500.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		credential := c.Request().Header.Get("Authorization")

		user, err := m.verifier.Verify(c.Request().Context(), credential)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"message":   "Authentication missing or invalid.",
					"loggedOut": true,
				})
			}

			m.logger.Error("Credential verification failed", slog.Any("error", err))

			return c.JSON(http.StatusInternalServerError, map[string]any{
				"message": "Internal server error",
				"error":   err.Error(),
			})
		}

		c.Set(userContextKey, user)

		return next(c)
	}
}

// CurrentUser returns the user attached by Authenticate, if any.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(userContextKey).(*entity.User)

	return user, ok
}
