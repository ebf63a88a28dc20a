package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "price", "error": "must be at least 0" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error shape written to API clients.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST", "PRODUCT_INVALID").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: whether the client may show Message verbatim.
//   - Errors: per-field validation errors.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
