package employee

import (
	"errors"
	"fmt"
)

// Store-level sentinels.
var (
	ErrRecordNotFound = errors.New("employee: record not found")
	ErrDuplicateKey   = errors.New("employee: duplicate key")
)

// EntityName is used in error messages.
const EntityName = "Employee"

// NotFoundError reports a missing (or not visible) record.
type NotFoundError struct {
	Entity string
	Field  string
	Value  any
}

func NewNotFoundError(id int64) *NotFoundError {
	return &NotFoundError{Entity: EntityName, Field: "id", Value: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Entity, e.Field, e.Value)
}

// Is lets errors.Is(err, ErrRecordNotFound) match a *NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}

// AlreadyDeletedError reports a delete of a record that is already inactive.
type AlreadyDeletedError struct {
	Entity string
	Value  any
}

func NewAlreadyDeletedError(id int64) *AlreadyDeletedError {
	return &AlreadyDeletedError{Entity: EntityName, Value: id}
}

func (e *AlreadyDeletedError) Error() string {
	return fmt.Sprintf("%s with id %v is already deleted", e.Entity, e.Value)
}
