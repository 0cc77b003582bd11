package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskly/task-api/internal/api/metrics"
	"github.com/taskly/task-api/internal/core/ports"
)

// Context keys under which the resolved identity is stored.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxName   = "name"
)

// Auth verifies the bearer token and injects the resolved identity into the
// request context. Requests without a valid token are rejected with 401
// before reaching any handler.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c)
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed authorization header")
			}

			ident, err := tokens.Verify(raw)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, ident.UserID)
			c.Set(CtxEmail, ident.Email)
			c.Set(CtxName, ident.Name)

			return next(c)
		}
	}
}

// OptionalAuth attaches an identity when a valid bearer token is present but
// never rejects the request. Public routes (register, login) use it so a
// stale token in the client does not block re-authentication.
func OptionalAuth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw, ok := bearerToken(c); ok {
				if ident, err := tokens.Verify(raw); err == nil {
					c.Set(CtxUserID, ident.UserID)
					c.Set(CtxEmail, ident.Email)
					c.Set(CtxName, ident.Name)
				}
			}
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
