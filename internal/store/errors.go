package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a new
	// user fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrDashboardNotFound is returned when a query or update targets a
	// dashboard that does not exist.
	ErrDashboardNotFound = errors.New("dashboard not found")

	// ErrUnknownAssignmentTarget is returned when an assignment references a
	// user or dashboard id that does not exist.
	ErrUnknownAssignmentTarget = errors.New("assignment references unknown user or dashboard")
)
