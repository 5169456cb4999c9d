// Package errs defines the error shapes returned to API clients.
//
//   - One JSON shape for every failure (HTTPError).
//   - Field-level validation errors for request payloads.
//   - Optional "action hints" a client can interpret.
//   - A path and correlation id so a failing call can be traced in the logs.
package errs

import "strings"

// FieldError represents a single invalid field in a request payload.
// Example:
//
//	{ "field": "email", "error": "must be a valid email" }
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string `json:"field"`

	// Error is the human-readable reason.
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRedirect tells the client it should redirect somewhere.
	ActionTypeRedirect ActionType = "redirect"
)

// Action describes an optional "what the client should do next" instruction.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type rendered to API clients.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "NOT_FOUND").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the message is safe to show to end users as-is.
//   - Errors: per-field validation errors.
//   - Action: client instruction (optional).
//   - Path: request path the error belongs to.
//   - CorrelationID: id to find the failure in the logs.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`
	Action *Action      `json:"action"`

	// Path and CorrelationID are filled by the global error handler when
	// the constructor did not set them.
	Path          string `json:"path,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// Error returns the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// Only the type is compared; Code and Status are not.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	cp := *e
	cp.Message = message
	return &cp
}

// WithRequest returns a copy of e with Path and CorrelationID filled in,
// keeping any value the error already carries.
func (e *HTTPError) WithRequest(path, correlationID string) *HTTPError {
	cp := *e
	if cp.Path == "" {
		cp.Path = path
	}
	if cp.CorrelationID == "" {
		cp.CorrelationID = correlationID
	}
	return &cp
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
