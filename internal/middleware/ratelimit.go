package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/pkg/config"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware limits requests per client IP using an in-memory
// token-bucket store. Exceeding the limit returns 429 in the shared envelope.
func RateLimitMiddleware(cfg *config.RateLimitConfig) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(cfg.Rate),
		Burst: cfg.Burst,
	})
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden,
				dto.NewErrorResponse(http.StatusForbidden, "Could not identify client"))
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests,
				dto.NewErrorResponse(http.StatusTooManyRequests, "Rate limit exceeded"))
		},
	})
}
