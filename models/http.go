package models

// Request payloads accepted by the HTTP API. Responses reuse the domain
// models directly.

// LoginRequest carries the credentials of a login attempt.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUserRequest is the admin payload for creating an account. Password
// arrives in plain text over the transport and is hashed before storage.
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

// UpdateUserRequest is the admin payload for editing an account. The
// username is immutable and therefore absent.
type UpdateUserRequest struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// ResetPasswordRequest carries the replacement password for an account.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// DashboardRequest is the admin payload for creating or editing a catalog
// entry. EmbedURL may be a bare URL or a full iframe snippet; the server
// reduces it to the src URL.
type DashboardRequest struct {
	Name     string `json:"name"`
	EmbedURL string `json:"embed_url"`
}

// AssignmentsRequest is the full replacement set of dashboard ids for one
// user. An empty list clears every assignment.
type AssignmentsRequest struct {
	DashboardIDs []int64 `json:"dashboard_ids"`
}
