package formstore

import "errors"

var (
	// ErrNotFound is returned when no snapshot exists for the id or it has
	// expired.
	ErrNotFound = errors.New("formstore: snapshot not found")

	// ErrEmptyID is returned for blank session ids.
	ErrEmptyID = errors.New("formstore: empty session id")

	ErrFailedToParseRedisURL = errors.New("formstore: failed to parse redis connection url")
	ErrRedisNotReady         = errors.New("formstore: redis is not ready")
)
