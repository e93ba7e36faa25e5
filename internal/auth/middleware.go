package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"gatehouse/internal/repository"
)

// SessionCookieName is the one cookie this API reads and writes. Its value is
// the raw session token, scoped to path "/", with no expiry or security
// attributes.
const SessionCookieName = "session_token"

// SessionGate resolves the session cookie into an identity or rejects the
// request. No cookie (or an empty one) and no matching stored token are both
// Forbidden; an unexpected storage fault is a generic BadRequest. The lookup
// runs on every request: tokens never expire and nothing is cached, so the
// store is the single source of truth.
func SessionGate(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusForbidden)
			}
			user, err := users.FindBySessionToken(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusForbidden)
				}
				c.Logger().Errorf("session lookup: %v", err)
				return echo.NewHTTPError(http.StatusBadRequest)
			}
			ctx := WithIdentity(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// OwnerGate requires SessionGate to have run and the ":id" path parameter to
// equal the resolved identity's id. Pure comparison, no storage access.
func OwnerGate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden)
			}
			if c.Param("id") != identity.ID.String() {
				return echo.NewHTTPError(http.StatusForbidden)
			}
			return next(c)
		}
	}
}
