package employee

import (
	"errors"
	"fmt"
	"testing"
)

func TestEmployeeMapperRoundTrip(t *testing.T) {
	t.Parallel()

	m := EmployeeMapper{}
	dto := EmployeeDTO{ID: 7, Name: "Alice", Email: "alice@example.com", Position: "Engineer", Phone: "+14155550100"}

	entity := m.ToEntity(dto)
	if !entity.Active {
		t.Fatal("mapped entity should default to active")
	}
	if !entity.CreatedAt.IsZero() {
		t.Fatal("mapper must not set CreatedAt")
	}
	if got := m.ToDTO(entity); got != dto {
		t.Fatalf("round trip = %+v, want %+v", got, dto)
	}
}

func TestToDTOsNeverNil(t *testing.T) {
	t.Parallel()

	got := ToDTOs(EmployeeMapper{}, nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestEmployeeDTOValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dto     EmployeeDTO
		wantErr bool
	}{
		{"name only", EmployeeDTO{Name: "Alice"}, false},
		{"full", EmployeeDTO{Name: "Alice", Email: "a@example.com", Position: "Lead", Phone: "+442071838750"}, false},
		{"missing name", EmployeeDTO{}, true},
		{"bad email", EmployeeDTO{Name: "Alice", Email: "alice"}, true},
		{"bad phone", EmployeeDTO{Name: "Alice", Phone: "555-0100"}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.dto.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("retrieve: %w", NewNotFoundError(7))
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatal("NotFoundError should match ErrRecordNotFound")
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Error() != "Employee not found with id: 7" {
		t.Fatalf("unexpected error: %v", nf)
	}

	if got := NewAlreadyDeletedError(7).Error(); got != "Employee with id 7 is already deleted" {
		t.Fatalf("message = %q", got)
	}
}
