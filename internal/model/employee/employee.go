// Package employee holds the Employee domain: the stored entity, its
// transfer object, the mapper between them, the store contract and the
// domain errors.
package employee

import (
	"time"

	"github.com/deppfellow/employee-service/internal/validation"
)

// Employee is the stored record. Records are never removed; Active=false
// marks a soft-deleted employee.
type Employee struct {
	ID        int64
	Name      string
	Email     string
	Position  string
	Phone     string
	Active    bool
	CreatedAt time.Time
}

// EmployeeDTO is the JSON shape exchanged with clients. Status and
// creation time are not part of it.
type EmployeeDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Position string `json:"position,omitempty" validate:"omitempty,max=100"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,e164"`
}

func (d *EmployeeDTO) Validate() error {
	return validation.Validator().Struct(d)
}

// GetEmployeeRequest addresses a single employee by path id.
type GetEmployeeRequest struct {
	ID int64 `param:"id"`
}

func (r *GetEmployeeRequest) Validate() error {
	return nil
}

// UpdateEmployeeRequest carries the path id and the replacement payload.
// Any id in the body is ignored.
type UpdateEmployeeRequest struct {
	ID int64 `param:"id" json:"-"`
	EmployeeDTO
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validation.Validator().Struct(r)
}

// ListEmployeesRequest has no parameters; it exists so list goes through
// the same handler pipeline as the other operations.
type ListEmployeesRequest struct{}

func (r *ListEmployeesRequest) Validate() error {
	return nil
}
