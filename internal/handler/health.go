package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/employee-service/internal/middleware"
	"github.com/deppfellow/employee-service/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthHandler reports whether the service and its dependencies are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth runs the configured dependency checks.
// 200 when all pass, 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      statusHealthy,
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	observability := h.server.Config.Observability
	isHealthy := true

	if observability.HasCheck("database") && h.server.DB != nil {
		if !h.runCheck(c.Request().Context(), &logger, checks, "database", h.server.DB.Ping) {
			isHealthy = false
		}
	}

	if observability.HasCheck("redis") && h.server.Redis != nil {
		ping := func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		}
		if !h.runCheck(c.Request().Context(), &logger, checks, "redis", ping) {
			isHealthy = false
		}
	}

	if !isHealthy {
		response["status"] = statusUnhealthy

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthError(map[string]interface{}{
			"check_type":        "overall",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// runCheck pings one dependency under the configured timeout and records
// the outcome in checks.
func (h *HealthHandler) runCheck(
	ctx context.Context,
	logger *zerolog.Logger,
	checks map[string]interface{},
	name string,
	ping func(context.Context) error,
) bool {
	ctx, cancel := context.WithTimeout(ctx, h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	checkStart := time.Now()
	err := ping(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		checks[name] = map[string]interface{}{
			"status":        statusUnhealthy,
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msgf("%s health check failed", name)

		h.recordHealthError(map[string]interface{}{
			"check_type":       name,
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
		return false
	}

	checks[name] = map[string]interface{}{
		"status":        statusHealthy,
		"response_time": elapsed.String(),
	}

	logger.Debug().
		Dur("response_time", elapsed).
		Msgf("%s health check passed", name)
	return true
}

func (h *HealthHandler) recordHealthError(attrs map[string]interface{}) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}
	attrs["operation"] = "health_check"
	app.RecordCustomEvent("HealthCheckError", attrs)
}
