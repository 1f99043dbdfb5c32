package derive

import "errors"

var (
	// ErrCompile is returned when an expression does not compile.
	ErrCompile = errors.New("derive: compile expression")

	// ErrEvaluate is returned when an expression fails at run time or its
	// result cannot be used for the attribute.
	ErrEvaluate = errors.New("derive: evaluate expression")

	// ErrReservedField is returned when a form field is named after the
	// expression environment's data key.
	ErrReservedField = errors.New("derive: reserved field name")
)
