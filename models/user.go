package models

import "time"

// Role values stored in the users.role column. The portal recognises
// exactly two authorization levels.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a portal account used for authentication and authorization.
// It contains identity attributes and credential-related data.
// PasswordHash must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login identifier. It is immutable after
	// creation; edits never touch this column.
	Username string `json:"username"`

	// Name is the display name of the user. It is non-sensitive and may be
	// shown in UI.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password. It is never
	// exposed via JSON.
	PasswordHash string `json:"-"`

	// Role is either RoleUser or RoleAdmin and gates access to the admin
	// console.
	Role string `json:"role"`

	// Active gates authentication: an inactive user can never log in,
	// regardless of credentials.
	Active bool `json:"active"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user may access the admin console.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
