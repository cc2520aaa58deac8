package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid store backend settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidRemoteConfigs indicates an unusable remote endpoint
	// setting (for example, a URL without an http(s) scheme).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
)
