package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, name, password_hash, role, active)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, username, name, password_hash, role, active, created_at;`

	findUserByUsername = `SELECT id, username, name, password_hash, role, active, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, name, password_hash, role, active, created_at
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT id, username, name, password_hash, role, active, created_at
    FROM users
    ORDER BY username;`

	updateUser = `UPDATE users
    SET name = $1, role = $2, active = $3
    WHERE id = $4;`

	updateUserPassword = `UPDATE users
    SET password_hash = $1
    WHERE id = $2;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createDashboard = `INSERT INTO dashboards (name, embed_url)
    VALUES ($1, $2)
    RETURNING id, name, embed_url;`

	findDashboardByID = `SELECT id, name, embed_url
    FROM dashboards
    WHERE id = $1;`

	listDashboards = `SELECT id, name, embed_url
    FROM dashboards
    ORDER BY name;`

	updateDashboard = `UPDATE dashboards
    SET name = $1, embed_url = $2
    WHERE id = $3;`

	deleteDashboard = `DELETE FROM dashboards WHERE id = $1;`

	listAssignedDashboards = `SELECT d.id, d.name, d.embed_url
    FROM dashboards d
    JOIN user_dashboards ud ON ud.dashboard_id = d.id
    WHERE ud.user_id = $1
    ORDER BY d.name;`

	clearAssignmentsByUser = `DELETE FROM user_dashboards WHERE user_id = $1;`

	clearAssignmentsByDashboard = `DELETE FROM user_dashboards WHERE dashboard_id = $1;`
)

// queryBuilder produces PostgreSQL-style $N placeholders, matching the
// constant queries above. SQLite accepts this parameter form as well.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertAssignments builds the multi-row INSERT used when replacing a
// user's assignment set. squirrel generates VALUES ($1,$2),($3,$4),... for
// the selected dashboard ids.
func buildInsertAssignments(userID int64, dashboardIDs []int64) (string, []any, error) {
	insert := queryBuilder.
		Insert("user_dashboards").
		Columns("user_id", "dashboard_id")

	for _, dashboardID := range dashboardIDs {
		insert = insert.Values(userID, dashboardID)
	}

	return insert.ToSql()
}

// buildAssignmentSummary builds the admin summary query: every
// (username, dashboard-name) pair via a left join, so users with no
// assignments still appear with an empty dashboard name.
func buildAssignmentSummary() (string, []any, error) {
	return queryBuilder.
		Select("u.username", "COALESCE(d.name, '') AS dashboard").
		From("users u").
		LeftJoin("user_dashboards ud ON ud.user_id = u.id").
		LeftJoin("dashboards d ON d.id = ud.dashboard_id").
		OrderBy("u.username", "d.name").
		ToSql()
}
