package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks caller-supplied parameters rejected before
	// any statement reaches the store.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConstraintViolation marks writes the store refused: a missing
	// required column, a failed CHECK, a type mismatch, a duplicate key.
	ErrConstraintViolation = errors.New("constraint violation")
)

// ArgumentError describes a single rejected parameter.
type ArgumentError struct {
	Field   string
	Message string
}

// InvalidArgument builds an *ArgumentError for field.
func InvalidArgument(field, format string, args ...any) *ArgumentError {
	return &ArgumentError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Message)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ToHTTP converts e into a 400 carrying a single field error.
func (e *ArgumentError) ToHTTP() *HTTPError {
	return NewBadRequestError(e.Error(), true, nil, []FieldError{{
		Field: e.Field,
		Error: e.Message,
	}})
}
