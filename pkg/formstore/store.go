package formstore

import (
	"context"

	"github.com/dmitrymomot/validify/pkg/formstate"
)

// Store persists form snapshots by session id.
type Store interface {
	// Save stores the snapshot and refreshes its expiry.
	Save(ctx context.Context, id string, state formstate.FormState) error
	// Load returns the snapshot or ErrNotFound.
	Load(ctx context.Context, id string) (formstate.FormState, error)
	// Delete removes the snapshot. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}
