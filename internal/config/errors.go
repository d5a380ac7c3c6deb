package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates that no session token signing key was
	// provided by any configuration source.
	ErrMissingTokenSignKey = errors.New("missing token sign key")
)
