package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorsStatusAndCode(t *testing.T) {
	t.Parallel()

	custom := "EMPLOYEE_INVALID"
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"unauthorized", NewUnauthorizedError("no", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("no", false), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"bad request custom code", NewBadRequestError("bad", false, &custom, nil, nil), http.StatusBadRequest, custom},
		{"not found", NewNotFoundError("missing", true, nil), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", NewConflictError("dup", "/employee"), http.StatusConflict, "CONFLICT"},
		{"already deleted", NewAlreadyDeletedError("gone"), http.StatusConflict, CodeAlreadyDeleted},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Status != tt.status {
				t.Fatalf("status = %d, want %d", tt.err.Status, tt.status)
			}
			if tt.err.Code != tt.code {
				t.Fatalf("code = %q, want %q", tt.err.Code, tt.code)
			}
		})
	}
}

func TestNewConflictErrorTagsRequest(t *testing.T) {
	t.Parallel()

	first := NewConflictError("Employee already exists", "/employee")
	second := NewConflictError("Employee already exists", "/employee")

	if first.Path != "/employee" {
		t.Fatalf("path = %q", first.Path)
	}
	if first.CorrelationID == "" {
		t.Fatal("expected correlation id")
	}
	if first.CorrelationID == second.CorrelationID {
		t.Fatal("expected a fresh correlation id per error")
	}
}

func TestWithRequestKeepsExistingValues(t *testing.T) {
	t.Parallel()

	conflict := NewConflictError("dup", "/employee")
	tagged := conflict.WithRequest("/employee/3", "req-1")
	if tagged.Path != "/employee" || tagged.CorrelationID != conflict.CorrelationID {
		t.Fatalf("existing values overwritten: %+v", tagged)
	}

	notFound := NewNotFoundError("missing", true, nil)
	tagged = notFound.WithRequest("/employee/3", "req-1")
	if tagged.Path != "/employee/3" || tagged.CorrelationID != "req-1" {
		t.Fatalf("values not filled: %+v", tagged)
	}
	if notFound.Path != "" {
		t.Fatal("original error mutated")
	}
}

func TestHTTPErrorIs(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("missing", false, nil))
	if !errors.Is(wrapped, &HTTPError{}) {
		t.Fatal("expected errors.Is to match any *HTTPError")
	}

	var httpErr *HTTPError
	if !errors.As(wrapped, &httpErr) || httpErr.Status != http.StatusNotFound {
		t.Fatalf("errors.As failed: %v", httpErr)
	}
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	t.Parallel()

	if got := MakeUpperCaseWithUnderscores("Bad Request"); got != "BAD_REQUEST" {
		t.Fatalf("got %q", got)
	}
}
