package service

import (
	"context"

	"dashportal/models"
)

// AuthService authenticates users and manages session tokens.
type AuthService interface {
	// Login verifies the username/password pair against stored, active
	// users. Unknown user, inactive user, and wrong password all surface as
	// [ErrInvalidCredentials].
	Login(ctx context.Context, username, password string) (models.Session, error)
	// Session rebuilds the session view for an authenticated user id,
	// failing with [ErrInvalidCredentials] when the user no longer exists or
	// has been deactivated.
	Session(ctx context.Context, userID int64) (models.Session, error)
	CreateToken(ctx context.Context, session models.Session) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// HashPassword derives a storable hash from a plain-text password with a
	// fresh salt on every call.
	HashPassword(password string) (string, error)
}

// UserService implements the admin console's account workflows.
type UserService interface {
	CreateUser(ctx context.Context, username, name, password, role string, active bool) (models.User, error)
	UpdateUser(ctx context.Context, id int64, name, role string, active bool) error
	ResetPassword(ctx context.Context, id int64, password string) error
	// DeleteUser requires confirm=true; the user's assignments are removed
	// before the account row.
	DeleteUser(ctx context.Context, id int64, confirm bool) error
	ListUsers(ctx context.Context) ([]models.User, error)
}

// DashboardService implements the admin console's catalog workflows.
type DashboardService interface {
	// CreateDashboard strips iframe markup from rawURL before storage.
	CreateDashboard(ctx context.Context, name, rawURL string) (models.Dashboard, error)
	UpdateDashboard(ctx context.Context, id int64, name, rawURL string) error
	DeleteDashboard(ctx context.Context, id int64, confirm bool) error
	ListDashboards(ctx context.Context) ([]models.Dashboard, error)
	GetDashboard(ctx context.Context, id int64) (models.Dashboard, error)
}

// AssignmentService implements the admin console's user↔dashboard linking.
type AssignmentService interface {
	ListForUser(ctx context.Context, userID int64) ([]models.Dashboard, error)
	ReplaceForUser(ctx context.Context, userID int64, dashboardIDs []int64) error
	ClearForUser(ctx context.Context, userID int64) error
	Summary(ctx context.Context) ([]models.AssignmentSummary, error)
}

// ViewerService serves the logged-in user's dashboard page.
type ViewerService interface {
	// AssignedDashboards lists the dashboards visible to the user, ordered
	// by name. An empty list is a valid result.
	AssignedDashboards(ctx context.Context, userID int64) ([]models.Dashboard, error)
	// ResolveDashboard returns the embeddable view of one assigned
	// dashboard, with the frame source normalized and provider display
	// parameters applied.
	ResolveDashboard(ctx context.Context, userID, dashboardID int64) (models.DashboardView, error)
}
