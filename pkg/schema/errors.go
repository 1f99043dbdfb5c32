package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is matched by every *UnknownFieldError.
	ErrUnknownField = errors.New("unknown field")

	// ErrDuplicateField is returned when a field name is declared twice.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrEmptyFieldName is returned when a field is declared without a name.
	ErrEmptyFieldName = errors.New("empty field name")
)

// UnknownFieldError reports a field name that is not part of the schema.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}

// NewUnknownFieldError builds an UnknownFieldError for field.
func NewUnknownFieldError(field string) *UnknownFieldError {
	return &UnknownFieldError{Field: field}
}

// IsUnknownField reports whether err is, or wraps, an UnknownFieldError.
func IsUnknownField(err error) bool {
	var e *UnknownFieldError
	return errors.As(err, &e)
}
