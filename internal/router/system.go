package router

import (
	"github.com/deppfellow/employee-service/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints outside the employee API:
// health, static assets and the docs UI.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	// openapi.json lives here.
	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
