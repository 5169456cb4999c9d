package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/employee-service/internal/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestHandleErrorPgCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pgErr   *pgconn.PgError
		status  int
		code    string
		message string
	}{
		{
			name:    "unique violation",
			pgErr:   &pgconn.PgError{Code: "23505", TableName: "employees", ConstraintName: "employees_email_key"},
			status:  http.StatusConflict,
			code:    "EMPLOYEE_ALREADY_EXISTS",
			message: "Employee with this Email already exists",
		},
		{
			name:    "not null violation",
			pgErr:   &pgconn.PgError{Code: "23502", TableName: "employees", ColumnName: "name"},
			status:  http.StatusBadRequest,
			code:    "EMPLOYEE_REQUIRED",
			message: "The Name is required",
		},
		{
			name:    "check violation",
			pgErr:   &pgconn.PgError{Code: "23514", TableName: "employees", ColumnName: "phone"},
			status:  http.StatusBadRequest,
			code:    "EMPLOYEE_INVALID",
			message: "The Phone value does not meet required conditions",
		},
		{
			name:    "unknown",
			pgErr:   &pgconn.PgError{Code: "XX000", Message: "internal detail"},
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := HandleError(fmt.Errorf("insert employee: %w", tt.pgErr))

			var httpErr *errs.HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected *errs.HTTPError, got %T", err)
			}
			if httpErr.Status != tt.status {
				t.Fatalf("status = %d, want %d", httpErr.Status, tt.status)
			}
			if httpErr.Code != tt.code {
				t.Fatalf("code = %q, want %q", httpErr.Code, tt.code)
			}
			if httpErr.Message != tt.message {
				t.Fatalf("message = %q, want %q", httpErr.Message, tt.message)
			}
		})
	}
}

func TestHandleErrorPassThroughAndFallbacks(t *testing.T) {
	t.Parallel()

	original := errs.NewNotFoundError("Employee not found with id: 4", true, nil)
	if got := HandleError(original); got != error(original) {
		t.Fatalf("HTTPError not returned unchanged: %v", got)
	}

	var httpErr *errs.HTTPError
	if !errors.As(HandleError(sql.ErrNoRows), &httpErr) || httpErr.Status != http.StatusNotFound {
		t.Fatalf("no rows should map to 404, got %+v", httpErr)
	}

	if !errors.As(HandleError(errors.New("boom")), &httpErr) || httpErr.Status != http.StatusInternalServerError {
		t.Fatalf("unknown error should map to 500, got %+v", httpErr)
	}
}

func TestMapCodeAndErrCode(t *testing.T) {
	t.Parallel()

	if MapCode("23505") != UniqueViolation {
		t.Fatal("23505 should be a unique violation")
	}
	if MapCode("08006") != ConnectionException {
		t.Fatal("class 08 should be a connection exception")
	}
	if MapCode("42P01") != Other {
		t.Fatal("unmapped codes should be Other")
	}
	if MapSeverity("bogus") != SeverityError {
		t.Fatal("unknown severity should default to ERROR")
	}

	wrapped := fmt.Errorf("save: %w", &pgconn.PgError{Code: "23505"})
	if ErrCode(wrapped) != UniqueViolation {
		t.Fatal("ErrCode should see through wrapping")
	}
	if ErrCode(ConvertPgError(&pgconn.PgError{Code: "23503"})) != ForeignKeyViolation {
		t.Fatal("ErrCode should read converted errors")
	}
	if ErrCode(errors.New("plain")) != Other {
		t.Fatal("plain errors are Other")
	}
}
