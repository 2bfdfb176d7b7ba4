package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	authpkg "github.com/carelink/practice-api/internal/auth"
)

// loginPath is where unauthenticated browser requests are sent.
const loginPath = "/login"

// Session validates the session cookie and stores principal metadata in the
// request context. API requests without a valid session get a 401 envelope;
// page requests are redirected to the login screen instead. An invalid or
// expired cookie is cleared so the client does not retry it forever.
func Session(sessions *authpkg.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(authpkg.CookieName)
			if err != nil || cookie.Value == "" {
				return rejectUnauthenticated(c, sessions, false)
			}

			claims, err := sessions.Parse(cookie.Value)
			if err != nil {
				return rejectUnauthenticated(c, sessions, true)
			}

			// Authenticated responses must never land in shared caches.
			c.Response().Header().Set("Cache-Control", "no-store")

			c.Set(ContextKeyUserID, claims.Subject)
			c.Set(ContextKeyUserEmail, claims.Email)
			c.Set(ContextKeyUserRole, claims.Role)

			return next(c)
		}
	}
}

func rejectUnauthenticated(c echo.Context, sessions *authpkg.SessionManager, clearCookie bool) error {
	if clearCookie {
		c.SetCookie(sessions.ClearCookie())
	}
	if isAPIRequest(c) {
		return c.JSON(http.StatusUnauthorized, map[string]any{
			"success": false,
			"error":   "authentication required",
		})
	}
	return c.Redirect(http.StatusFound, loginPath)
}

func isAPIRequest(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/auth/")
}
