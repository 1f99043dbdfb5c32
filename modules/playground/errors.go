package playground

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/validify/pkg/formstate"
	"github.com/dmitrymomot/validify/pkg/formstore"
	"github.com/dmitrymomot/validify/pkg/schema"
)

var (
	// ErrNotListField is returned when toggling a field that is not a list.
	ErrNotListField = errors.New("playground: field is not a list")
	// ErrBadSignals is returned when the request signals cannot be decoded.
	ErrBadSignals = errors.New("playground: invalid signals")
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, formstore.ErrNotFound):
		return http.StatusNotFound
	case schema.IsUnknownField(err),
		errors.Is(err, formstate.ErrInvalidEvent),
		errors.Is(err, ErrNotListField),
		errors.Is(err, ErrBadSignals):
		return http.StatusBadRequest
	case errors.Is(err, formstate.ErrDerive):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
