package models

// Session identifies the current actor for the duration of one browser
// session. It is derived from the users table on every authenticated
// request, never cached, so role changes and deactivation take effect
// immediately.
type Session struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the session may reach the admin console.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// SessionFromUser builds the transient session view of a stored user.
func SessionFromUser(u User) Session {
	return Session{
		UserID:   u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
}
