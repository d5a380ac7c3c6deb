package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashportal/internal/config"
	"dashportal/internal/logger"
	"dashportal/models"
)

// newTestDB opens a real migrated SQLite database in a temp dir, so the
// assignment tests exercise actual constraint and join behavior instead of
// mocked statements.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := config.DB{Path: filepath.Join(t.TempDir(), "portal_test.db")}
	db, err := NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func seedUser(t *testing.T, repo UserRepository, username string) models.User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), models.User{
		Username:     username,
		Name:         username,
		PasswordHash: "hash",
		Role:         models.RoleUser,
		Active:       true,
	})
	require.NoError(t, err)
	return user
}

func seedDashboard(t *testing.T, repo DashboardRepository, name string) models.Dashboard {
	t.Helper()
	dashboard, err := repo.CreateDashboard(context.Background(), models.Dashboard{
		Name:     name,
		EmbedURL: "https://bi.example/" + name,
	})
	require.NoError(t, err)
	return dashboard
}

func TestReplaceAssignments_LeavesExactlyNewSet(t *testing.T) {
	db := newTestDB(t)
	l := logger.Nop()
	users := NewUserRepository(db, l)
	dashboards := NewDashboardRepository(db, l)
	assignments := NewAssignmentRepository(db, l)
	ctx := context.Background()

	alice := seedUser(t, users, "alice")
	sales := seedDashboard(t, dashboards, "sales")
	ops := seedDashboard(t, dashboards, "ops")
	finance := seedDashboard(t, dashboards, "finance")

	require.NoError(t, assignments.ReplaceAssignments(ctx, alice.ID, []int64{sales.ID, ops.ID}))

	require.NoError(t, assignments.ReplaceAssignments(ctx, alice.ID, []int64{finance.ID}))

	assigned, err := assignments.ListAssignedDashboards(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, assigned, 1, "no residue from the prior set may remain")
	assert.Equal(t, finance.ID, assigned[0].ID)
}

func TestReplaceAssignments_EmptySelectionClears(t *testing.T) {
	db := newTestDB(t)
	l := logger.Nop()
	users := NewUserRepository(db, l)
	dashboards := NewDashboardRepository(db, l)
	assignments := NewAssignmentRepository(db, l)
	ctx := context.Background()

	alice := seedUser(t, users, "alice")
	sales := seedDashboard(t, dashboards, "sales")

	require.NoError(t, assignments.ReplaceAssignments(ctx, alice.ID, []int64{sales.ID}))
	require.NoError(t, assignments.ReplaceAssignments(ctx, alice.ID, nil))

	assigned, err := assignments.ListAssignedDashboards(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, assigned)
}

func TestReplaceAssignments_UnknownDashboard(t *testing.T) {
	db := newTestDB(t)
	l := logger.Nop()
	users := NewUserRepository(db, l)
	assignments := NewAssignmentRepository(db, l)
	ctx := context.Background()

	alice := seedUser(t, users, "alice")

	err := assignments.ReplaceAssignments(ctx, alice.ID, []int64{12345})
	require.ErrorIs(t, err, ErrUnknownAssignmentTarget)

	// failed replace must not have cleared anything permanent
	assigned, err := assignments.ListAssignedDashboards(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, assigned)
}

func TestListAssignedDashboards_OrderedByName(t *testing.T) {
	db := newTestDB(t)
	l := logger.Nop()
	users := NewUserRepository(db, l)
	dashboards := NewDashboardRepository(db, l)
	assignments := NewAssignmentRepository(db, l)
	ctx := context.Background()

	alice := seedUser(t, users, "alice")
	zulu := seedDashboard(t, dashboards, "zulu")
	alpha := seedDashboard(t, dashboards, "alpha")

	require.NoError(t, assignments.ReplaceAssignments(ctx, alice.ID, []int64{zulu.ID, alpha.ID}))

	assigned, err := assignments.ListAssignedDashboards(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, assigned, 2)
	assert.Equal(t, "alpha", assigned[0].Name)
	assert.Equal(t, "zulu", assigned[1].Name)
}

func TestDeleteUser_CascadesAssignments(t *testing.T) {
	db := newTestDB(t)
	l := logger.Nop()
	users := NewUserRepository(db, l)
	dashboards := NewDashboardRepository(db, l)
	assignments := NewAssignmentRepository(db, l)
	ctx := context.Background()

	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")
	sales := seedDashboard(t, dashboards, "sales")

	require.NoError(t, assignments.ReplaceAssignments(ctx, alice.ID, []int64{sales.ID}))
	require.NoError(t, assignments.ReplaceAssignments(ctx, bob.ID, []int64{sales.ID}))

	require.NoError(t, users.DeleteUser(ctx, alice.ID))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM user_dashboards WHERE user_id = ?`, alice.ID).Scan(&count))
	assert.Zero(t, count, "no assignment rows may reference the deleted user")

	// bob's assignment survives
	assigned, err := assignments.ListAssignedDashboards(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, assigned, 1)
}

func TestDeleteDashboard_CascadesAssignments(t *testing.T) {
	db := newTestDB(t)
	l := logger.Nop()
	users := NewUserRepository(db, l)
	dashboards := NewDashboardRepository(db, l)
	assignments := NewAssignmentRepository(db, l)
	ctx := context.Background()

	alice := seedUser(t, users, "alice")
	sales := seedDashboard(t, dashboards, "sales")
	ops := seedDashboard(t, dashboards, "ops")

	require.NoError(t, assignments.ReplaceAssignments(ctx, alice.ID, []int64{sales.ID, ops.ID}))
	require.NoError(t, dashboards.DeleteDashboard(ctx, sales.ID))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM user_dashboards WHERE dashboard_id = ?`, sales.ID).Scan(&count))
	assert.Zero(t, count, "no assignment rows may reference the deleted dashboard")

	assigned, err := assignments.ListAssignedDashboards(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, ops.ID, assigned[0].ID)
}

func TestSummary_IncludesUsersWithoutAssignments(t *testing.T) {
	db := newTestDB(t)
	l := logger.Nop()
	users := NewUserRepository(db, l)
	dashboards := NewDashboardRepository(db, l)
	assignments := NewAssignmentRepository(db, l)
	ctx := context.Background()

	alice := seedUser(t, users, "alice")
	seedUser(t, users, "bob")
	sales := seedDashboard(t, dashboards, "sales")

	require.NoError(t, assignments.ReplaceAssignments(ctx, alice.ID, []int64{sales.ID}))

	summary, err := assignments.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, models.AssignmentSummary{Username: "alice", Dashboard: "sales"}, summary[0])
	assert.Equal(t, models.AssignmentSummary{Username: "bob", Dashboard: ""}, summary[1])
}

func TestCreateUser_DuplicateUsernameIntegration(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db, logger.Nop())
	ctx := context.Background()

	seedUser(t, users, "alice")

	_, err := users.CreateUser(ctx, models.User{
		Username:     "alice",
		Name:         "Other Alice",
		PasswordHash: "otherhash",
		Role:         models.RoleUser,
		Active:       true,
	})
	require.ErrorIs(t, err, ErrUsernameAlreadyExists)

	all, err := users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "no new row may be inserted for the duplicate attempt")
}
