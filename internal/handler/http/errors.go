package http

import "errors"

// Sentinel errors used by the session middleware when locating the session
// token on an incoming request. Callers can match against them with
// [errors.Is].
var (
	// ErrMissingSessionToken is returned when the request carries neither a
	// session cookie nor an "Authorization" header.
	ErrMissingSessionToken = errors.New("missing session token")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be parsed as a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrAdminOnly is returned when an authenticated non-admin user reaches
	// an admin console route.
	ErrAdminOnly = errors.New("admin access required")
)
