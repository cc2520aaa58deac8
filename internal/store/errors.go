package store

import "errors"

var (
	// ErrNotFound is returned when the requested configuration key has no
	// stored document yet.
	ErrNotFound = errors.New("configuration not found")
)
