package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required fields are blank or
	// carry values outside the allowed set (e.g. an unknown role).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials collapses every login failure (unknown user,
	// inactive user, wrong password) into one value so callers cannot leak
	// which factor failed.
	ErrInvalidCredentials = errors.New("invalid username or password, or inactive user")

	// ErrConfirmationRequired is returned when a destructive action is
	// requested without the explicit confirmation flag.
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrTokenIsExpiredOrInvalid is returned for any session token that
	// fails validation, regardless of the underlying JWT error.
	ErrTokenIsExpiredOrInvalid = errors.New("session token is expired or invalid")

	// ErrNotAssigned is returned when a viewer requests a dashboard that is
	// not assigned to them.
	ErrNotAssigned = errors.New("dashboard is not assigned to this user")
)
