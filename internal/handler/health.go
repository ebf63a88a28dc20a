package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/blogful/internal/middleware"
	"github.com/deppfellow/blogful/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthCheckTimeout bounds the database ping of a health check.
const HealthCheckTimeout = 5 * time.Second

// pinger is the part of the pool the health check needs.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the service and its database are reachable.
type HealthHandler struct {
	Handler
	db pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		db:      s.DB.Pool,
	}
}

// recordHealthError sends a HealthCheckError event when New Relic is on.
func (h *HealthHandler) recordHealthError(attrs map[string]any) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		attrs["operation"] = "health_check"
		app.RecordCustomEvent("HealthCheckError", attrs)
	}
}

// CheckHealth answers 200 when the database responds to a ping within
// HealthCheckTimeout and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]any{}
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), HealthCheckTimeout)
	defer cancel()

	dbStart := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		checks["database"] = map[string]any{
			"status":        "unhealthy",
			"response_time": time.Since(dbStart).String(),
			"error":         err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(dbStart)).
			Msg("database health check failed")

		h.recordHealthError(map[string]any{
			"check_type":       "database",
			"error_type":       "database_unhealthy",
			"response_time_ms": time.Since(dbStart).Milliseconds(),
			"error_message":    err.Error(),
		})

		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	checks["database"] = map[string]any{
		"status":        "healthy",
		"response_time": time.Since(dbStart).String(),
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")

		h.recordHealthError(map[string]any{
			"check_type":    "response",
			"error_type":    "json_response_error",
			"error_message": err.Error(),
		})

		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
