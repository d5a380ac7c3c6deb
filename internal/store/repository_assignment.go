package store

import (
	"context"
	"fmt"

	"dashportal/internal/logger"
	"dashportal/models"
)

// assignmentRepository is the SQLite-backed implementation of
// [AssignmentRepository], managing the "user_dashboards" link table.
type assignmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAssignmentRepository constructs an [AssignmentRepository] backed by the
// provided database connection and logger.
func NewAssignmentRepository(db *DB, logger *logger.Logger) AssignmentRepository {
	logger.Debug().Msg("creating assignment repository")
	return &assignmentRepository{
		db:     db,
		logger: logger,
	}
}

// ListAssignedDashboards returns the dashboards assigned to the user,
// ordered by dashboard name. An empty result is not an error: a user with
// no assignments simply sees nothing.
func (r *assignmentRepository) ListAssignedDashboards(ctx context.Context, userID int64) ([]models.Dashboard, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAssignedDashboards, userID)
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.ListAssignedDashboards").Int64("user_id", userID).Msg("failed to execute query for assigned dashboards")
		return nil, fmt.Errorf("failed to query assigned dashboards: %w", err)
	}
	defer rows.Close()

	var dashboards []models.Dashboard

	for rows.Next() {
		var dashboard models.Dashboard

		scanErr := rows.Scan(&dashboard.ID, &dashboard.Name, &dashboard.EmbedURL)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*assignmentRepository.ListAssignedDashboards").Int64("user_id", userID).Msg("failed to scan assigned dashboard row")
			return nil, fmt.Errorf("failed to scan assigned dashboard row: %w", scanErr)
		}

		dashboards = append(dashboards, dashboard)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*assignmentRepository.ListAssignedDashboards").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating assigned dashboard rows: %w", rowsErr)
	}

	return dashboards, nil
}

// ReplaceAssignments replaces the user's entire assignment set atomically:
// all existing rows are deleted and the selected dashboard ids inserted
// inside one transaction. An empty selection leaves the user with no
// assignments.
//
// Returns [ErrUnknownAssignmentTarget] when a selected dashboard id or the
// user id does not exist (foreign-key violation).
func (r *assignmentRepository) ReplaceAssignments(ctx context.Context, userID int64, dashboardIDs []int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.ReplaceAssignments").Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, clearAssignmentsByUser, userID); err != nil {
		log.Err(err).Str("func", "*assignmentRepository.ReplaceAssignments").Int64("user_id", userID).Msg("failed to clear previous assignments")
		return fmt.Errorf("failed to clear previous assignments (user_id=%d): %w", userID, err)
	}

	if len(dashboardIDs) > 0 {
		query, args, err := buildInsertAssignments(userID, dashboardIDs)
		if err != nil {
			log.Err(err).Str("func", "*assignmentRepository.ReplaceAssignments").Msg("failed to build insert query")
			return fmt.Errorf("failed to build insert query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if isForeignKeyViolation(err) {
				log.Warn().Str("func", "*assignmentRepository.ReplaceAssignments").Int64("user_id", userID).Msg("assignment references unknown user or dashboard")
				return ErrUnknownAssignmentTarget
			}

			log.Err(err).Str("func", "*assignmentRepository.ReplaceAssignments").Int64("user_id", userID).Msg("failed to insert new assignments")
			return fmt.Errorf("failed to insert new assignments (user_id=%d): %w", userID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*assignmentRepository.ReplaceAssignments").Int64("user_id", userID).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ClearAssignments deletes every assignment of the user. Clearing a user
// with no assignments is a no-op, not an error.
func (r *assignmentRepository) ClearAssignments(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, clearAssignmentsByUser, userID); err != nil {
		log.Err(err).Str("func", "*assignmentRepository.ClearAssignments").Int64("user_id", userID).Msg("failed to clear assignments")
		return fmt.Errorf("failed to clear assignments (user_id=%d): %w", userID, err)
	}

	return nil
}

// Summary lists every (username, dashboard-name) pair via a left join;
// users with no assignments appear once with an empty dashboard name.
func (r *assignmentRepository) Summary(ctx context.Context) ([]models.AssignmentSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAssignmentSummary()
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.Summary").Msg("failed to build summary query")
		return nil, fmt.Errorf("failed to build summary query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.Summary").Msg("failed to execute summary query")
		return nil, fmt.Errorf("failed to query assignment summary: %w", err)
	}
	defer rows.Close()

	var summary []models.AssignmentSummary

	for rows.Next() {
		var item models.AssignmentSummary

		scanErr := rows.Scan(&item.Username, &item.Dashboard)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*assignmentRepository.Summary").Msg("failed to scan summary row")
			return nil, fmt.Errorf("failed to scan summary row: %w", scanErr)
		}

		summary = append(summary, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*assignmentRepository.Summary").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating summary rows: %w", rowsErr)
	}

	return summary, nil
}
