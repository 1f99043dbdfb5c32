package formstate

import "errors"

var (
	// ErrInvalidEvent is returned for events without a name or with an
	// unknown kind.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrDerive wraps failures of a trigger field's Deriver.
	ErrDerive = errors.New("schema derivation failed")

	// ErrNoTransition is returned when a field lifecycle has no transition
	// for the given phase and trigger.
	ErrNoTransition = errors.New("no lifecycle transition available")

	// ErrTransitionRejected is returned when every candidate transition was
	// blocked by its guards.
	ErrTransitionRejected = errors.New("lifecycle transition rejected by guards")
)
