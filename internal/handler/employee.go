package handler

import (
	"errors"
	"fmt"

	"github.com/deppfellow/employee-service/internal/errs"
	"github.com/deppfellow/employee-service/internal/middleware"
	"github.com/deppfellow/employee-service/internal/model/employee"
	"github.com/deppfellow/employee-service/internal/server"
	"github.com/deppfellow/employee-service/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	// EmployeePath tags conflict errors.
	EmployeePath = "/employee"

	conflictMessage = "Employee already exists"
)

type EmployeeHandler struct {
	Handler
	service *service.EmployeeService
}

func NewEmployeeHandler(s *server.Server, svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *EmployeeHandler) CreateEmployee(c echo.Context, req *employee.EmployeeDTO) (employee.EmployeeDTO, error) {
	created, err := h.service.Create(c.Request().Context(), *req)
	if err != nil {
		return employee.EmployeeDTO{}, h.toHTTPError(c, err)
	}
	return created, nil
}

func (h *EmployeeHandler) GetEmployee(c echo.Context, req *employee.GetEmployeeRequest) (employee.EmployeeDTO, error) {
	found, err := h.service.Retrieve(c.Request().Context(), req.ID)
	if err != nil {
		return employee.EmployeeDTO{}, h.toHTTPError(c, err)
	}
	return found, nil
}

func (h *EmployeeHandler) UpdateEmployee(c echo.Context, req *employee.UpdateEmployeeRequest) (employee.EmployeeDTO, error) {
	updated, err := h.service.Update(c.Request().Context(), req.ID, req.EmployeeDTO)
	if err != nil {
		return employee.EmployeeDTO{}, h.toHTTPError(c, err)
	}
	return updated, nil
}

func (h *EmployeeHandler) DeleteEmployee(c echo.Context, req *employee.GetEmployeeRequest) error {
	if err := h.service.Delete(c.Request().Context(), req.ID); err != nil {
		return h.toHTTPError(c, err)
	}
	return nil
}

func (h *EmployeeHandler) ListEmployees(c echo.Context, _ *employee.ListEmployeesRequest) ([]employee.EmployeeDTO, error) {
	all, err := h.service.List(c.Request().Context())
	if err != nil {
		return nil, h.toHTTPError(c, err)
	}
	return all, nil
}

// toHTTPError maps domain errors to client errors. Unknown errors pass
// through to the global error handler.
func (h *EmployeeHandler) toHTTPError(c echo.Context, err error) error {
	var notFound *employee.NotFoundError
	var alreadyDeleted *employee.AlreadyDeletedError

	switch {
	case errors.As(err, &notFound):
		return errs.NewNotFoundError(notFound.Error(), true, nil)

	case errors.As(err, &alreadyDeleted):
		return errs.NewAlreadyDeletedError(alreadyDeleted.Error())

	case errors.Is(err, employee.ErrDuplicateKey):
		conflict := errs.NewConflictError(conflictMessage, EmployeePath)
		middleware.GetLogger(c).Info().
			Err(err).
			Str("correlation_id", conflict.CorrelationID).
			Msg("employee conflict")
		return conflict

	default:
		return fmt.Errorf("employee handler: %w", err)
	}
}
