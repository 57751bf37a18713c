package distribution

import "errors"

var (
	// ErrUnrecognizedOrigin is returned when a live origin id does not match the active origin mapping.
	ErrUnrecognizedOrigin = errors.New("not a recognized object-storage origin")

	// ErrConflict is returned when an update is rejected because the concurrency token (ETag) is stale.
	ErrConflict = errors.New("distribution was modified concurrently")

	// ErrNotFound is returned when a distribution id does not exist.
	ErrNotFound = errors.New("distribution not found")
)
