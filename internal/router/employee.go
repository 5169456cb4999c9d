package router

import (
	"net/http"

	"github.com/deppfellow/employee-service/internal/handler"
	"github.com/deppfellow/employee-service/internal/model/employee"
	"github.com/labstack/echo/v4"
)

func registerEmployeeRoutes(r *echo.Echo, h *handler.EmployeeHandler) {
	g := r.Group(handler.EmployeePath)

	g.POST("", handler.Handle(h.Handler, h.CreateEmployee, http.StatusCreated, &employee.EmployeeDTO{}))
	g.GET("", handler.Handle(h.Handler, h.ListEmployees, http.StatusOK, &employee.ListEmployeesRequest{}))
	g.GET("/:id", handler.Handle(h.Handler, h.GetEmployee, http.StatusOK, &employee.GetEmployeeRequest{}))
	g.PUT("/:id", handler.Handle(h.Handler, h.UpdateEmployee, http.StatusOK, &employee.UpdateEmployeeRequest{}))
	g.DELETE("/:id", handler.HandleNoContent(h.Handler, h.DeleteEmployee, http.StatusNoContent, &employee.GetEmployeeRequest{}))
}
