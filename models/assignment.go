package models

// Assignment is a many-to-many grant of dashboard visibility to a user.
// The (UserID, DashboardID) pair is the composite primary key; duplicates
// cannot exist.
type Assignment struct {
	UserID      int64 `json:"user_id"`
	DashboardID int64 `json:"dashboard_id"`
}

// AssignmentSummary is one row of the admin summary view: every
// (username, dashboard) pair produced by a left join, so users with no
// assignments still appear with an empty dashboard name.
type AssignmentSummary struct {
	Username string `json:"username"`

	// Dashboard is the assigned dashboard's name, or "" when the user has
	// no assignments.
	Dashboard string `json:"dashboard"`
}

// TableName returns the name of the database table
// associated with the Assignment model.
func (a Assignment) TableName() string {
	return "user_dashboards"
}
