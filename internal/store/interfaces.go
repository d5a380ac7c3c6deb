package store

import (
	"context"

	"dashportal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for portal accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser persists name, role, and active for the user identified by
	// user.ID. Username is immutable and never updated.
	UpdateUser(ctx context.Context, user models.User) error
	UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error
	// DeleteUser removes the user's assignment rows first, then the user row,
	// inside one transaction.
	DeleteUser(ctx context.Context, id int64) error
}

// DashboardRepository is the persistence contract for the dashboard catalog.
type DashboardRepository interface {
	CreateDashboard(ctx context.Context, dashboard models.Dashboard) (models.Dashboard, error)
	FindDashboardByID(ctx context.Context, id int64) (models.Dashboard, error)
	ListDashboards(ctx context.Context) ([]models.Dashboard, error)
	UpdateDashboard(ctx context.Context, dashboard models.Dashboard) error
	// DeleteDashboard removes the dashboard's assignment rows first, then the
	// dashboard row, inside one transaction.
	DeleteDashboard(ctx context.Context, id int64) error
}

// AssignmentRepository is the persistence contract for the user↔dashboard
// many-to-many link.
type AssignmentRepository interface {
	// ListAssignedDashboards returns the dashboards assigned to the user,
	// ordered by dashboard name.
	ListAssignedDashboards(ctx context.Context, userID int64) ([]models.Dashboard, error)
	// ReplaceAssignments replaces the user's entire assignment set atomically
	// as delete-then-insert.
	ReplaceAssignments(ctx context.Context, userID int64, dashboardIDs []int64) error
	ClearAssignments(ctx context.Context, userID int64) error
	// Summary lists every (username, dashboard-name) pair via a left join.
	Summary(ctx context.Context) ([]models.AssignmentSummary, error)
}
