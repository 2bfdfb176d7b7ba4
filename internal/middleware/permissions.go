package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authpkg "github.com/carelink/practice-api/internal/auth"
	"github.com/carelink/practice-api/internal/entity"
)

// RequireAccess enforces the role permission matrix for one resource and
// action. It runs after Session, so a missing principal means the route was
// wired without authentication and the request is refused outright.
func RequireAccess(resource string, action authpkg.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := c.Get(ContextKeyUserRole).(entity.Role)
			if !ok || raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false,
					"error":   "authentication required",
				})
			}
			if !authpkg.Allowed(raw, resource, action) {
				return c.JSON(http.StatusForbidden, map[string]any{
					"success": false,
					"error":   "insufficient permissions",
				})
			}
			return next(c)
		}
	}
}
