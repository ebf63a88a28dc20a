package middleware

import (
	"net/http"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/deppfellow/blogful/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles requests per client IP with echo's
// in-memory limiter.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// RecordRateLimitHit sends a RateLimitHit event when New Relic is on.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}

// Limit allows Server.RateLimit requests per second per IP, with bursts of
// Server.RateLimitBurst. A zero rate disables limiting.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := r.server.Config.Server
	if cfg.RateLimit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	code := "RATE_LIMIT_EXCEEDED"
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(cfg.RateLimit),
			Burst: cfg.RateLimitBurst,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())

			GetLogger(c).Warn().
				Str("identifier", identifier).
				Msg("rate limit exceeded")

			return &errs.HTTPError{
				Code:    code,
				Message: "Too many requests",
				Status:  http.StatusTooManyRequests,
			}
		},
	})
}
