package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/employee-service/internal/errs"
	"github.com/labstack/echo/v4"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (r *sampleRequest) Validate() error {
	return Validator().Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "window", Message: "must not overlap"}}
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	t.Parallel()

	req := &sampleRequest{}
	if err := BindAndValidate(newContext(`{"name":"Ann","email":"ann@example.com"}`), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Name != "Ann" {
		t.Fatalf("name = %q", req.Name)
	}
}

func TestBindAndValidateFieldErrorsUseJSONNames(t *testing.T) {
	t.Parallel()

	err := BindAndValidate(newContext(`{"name":"Alexander","email":"nope"}`), &sampleRequest{})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	if httpErr.Status != http.StatusBadRequest || httpErr.Code != errs.CodeValidation {
		t.Fatalf("unexpected error: %+v", httpErr)
	}

	got := map[string]string{}
	for _, fe := range httpErr.Errors {
		got[fe.Field] = fe.Error
	}
	if got["name"] != "must not exceed 5 characters" {
		t.Fatalf("name error = %q", got["name"])
	}
	if got["email"] != "must be a valid email address" {
		t.Fatalf("email error = %q", got["email"])
	}
}

func TestBindAndValidateRequired(t *testing.T) {
	t.Parallel()

	err := BindAndValidate(newContext(`{}`), &sampleRequest{})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || len(httpErr.Errors) != 1 {
		t.Fatalf("expected one field error, got %v", err)
	}
	if httpErr.Errors[0].Field != "name" || httpErr.Errors[0].Error != "is required" {
		t.Fatalf("unexpected field error: %+v", httpErr.Errors[0])
	}
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	t.Parallel()

	err := BindAndValidate(newContext(`{"name":`), &sampleRequest{})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	if httpErr.Status != http.StatusBadRequest || httpErr.Message == "" {
		t.Fatalf("unexpected error: %+v", httpErr)
	}
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	t.Parallel()

	err := BindAndValidate(newContext(`{}`), &customRequest{})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || len(httpErr.Errors) != 1 {
		t.Fatalf("expected one field error, got %v", err)
	}
	if httpErr.Errors[0].Field != "window" {
		t.Fatalf("unexpected field error: %+v", httpErr.Errors[0])
	}
}
