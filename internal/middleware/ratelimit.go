package middleware

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// LoginRateLimiter applies a per-client token bucket to the login endpoint.
// Buckets are keyed by remote address, so one credential stuffing source
// cannot lock everyone else out.
func LoginRateLimiter(perMinute, burst int) echo.MiddlewareFunc {
	if perMinute <= 0 || burst <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return next(c)
			}
		}
	}

	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	limit := rate.Limit(float64(perMinute) / 60.0)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			mu.Lock()
			limiter, ok := limiters[c.RealIP()]
			if !ok {
				limiter = rate.NewLimiter(limit, burst)
				limiters[c.RealIP()] = limiter
			}
			mu.Unlock()

			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"success": false,
					"error":   "too many login attempts",
				})
			}

			return next(c)
		}
	}
}
