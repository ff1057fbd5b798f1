package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// MsgTooManyRequests is the body of a rate-limited response.
const MsgTooManyRequests = "Too many requests. Please try again later."

// DefaultRate is the per-IP request rate for form and chat endpoints.
const DefaultRate rate.Limit = 10

// RateLimiter limits requests per client IP using an in-memory store, which is
// enough for a single instance. The burst equals the rate.
func RateLimiter(limit rate.Limit) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStore(limit),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.String(http.StatusForbidden, "Unable to identify client.")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			c.Response().Header().Set("Retry-After", "1")
			return c.String(http.StatusTooManyRequests, MsgTooManyRequests)
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
