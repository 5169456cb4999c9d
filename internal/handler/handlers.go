package handler

import (
	"github.com/deppfellow/employee-service/internal/server"
	"github.com/deppfellow/employee-service/internal/service"
)

// Handlers groups all HTTP handlers for the router.
type Handlers struct {
	Employee *EmployeeHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Employee: NewEmployeeHandler(s, services.Employee),
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
