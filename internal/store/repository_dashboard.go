package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dashportal/internal/logger"
	"dashportal/models"
)

// dashboardRepository is the SQLite-backed implementation of
// [DashboardRepository], managing the "dashboards" catalog table.
type dashboardRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDashboardRepository constructs a [DashboardRepository] backed by the
// provided database connection and logger.
func NewDashboardRepository(db *DB, logger *logger.Logger) DashboardRepository {
	logger.Debug().Msg("creating dashboard repository")
	return &dashboardRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDashboard persists a new catalog entry and returns it with the
// server-assigned id. The embed URL must already be normalized by the
// caller; the store never inspects it.
func (r *dashboardRepository) CreateDashboard(ctx context.Context, dashboard models.Dashboard) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDashboard, dashboard.Name, dashboard.EmbedURL)

	var created models.Dashboard
	if err := row.Scan(&created.ID, &created.Name, &created.EmbedURL); err != nil {
		log.Err(err).Str("func", "*dashboardRepository.CreateDashboard").Msg("error: scanning created dashboard")
		return models.Dashboard{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindDashboardByID retrieves the catalog entry with the given id.
//
// Returns [ErrDashboardNotFound] when no row matches.
func (r *dashboardRepository) FindDashboardByID(ctx context.Context, id int64) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	var dashboard models.Dashboard
	row := r.db.QueryRowContext(ctx, findDashboardByID, id)
	if err := row.Scan(&dashboard.ID, &dashboard.Name, &dashboard.EmbedURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Dashboard{}, ErrDashboardNotFound
		}

		log.Err(err).Str("func", "*dashboardRepository.FindDashboardByID").Int64("id", id).Msg("error: scanning found dashboard")
		return models.Dashboard{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return dashboard, nil
}

// ListDashboards returns the whole catalog ordered by name.
func (r *dashboardRepository) ListDashboards(ctx context.Context) ([]models.Dashboard, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listDashboards)
	if err != nil {
		log.Err(err).Str("func", "*dashboardRepository.ListDashboards").Msg("failed to execute query for listing dashboards")
		return nil, fmt.Errorf("failed to query dashboards: %w", err)
	}
	defer rows.Close()

	var dashboards []models.Dashboard

	for rows.Next() {
		var dashboard models.Dashboard

		scanErr := rows.Scan(&dashboard.ID, &dashboard.Name, &dashboard.EmbedURL)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*dashboardRepository.ListDashboards").Msg("failed to scan dashboard row")
			return nil, fmt.Errorf("failed to scan dashboard row: %w", scanErr)
		}

		dashboards = append(dashboards, dashboard)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*dashboardRepository.ListDashboards").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating dashboard rows: %w", rowsErr)
	}

	return dashboards, nil
}

// UpdateDashboard persists name and embed URL for the catalog entry
// identified by dashboard.ID.
//
// Returns [ErrDashboardNotFound] when no row matches the id.
func (r *dashboardRepository) UpdateDashboard(ctx context.Context, dashboard models.Dashboard) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateDashboard, dashboard.Name, dashboard.EmbedURL, dashboard.ID)
	if err != nil {
		log.Err(err).Str("func", "*dashboardRepository.UpdateDashboard").Int64("id", dashboard.ID).Msg("failed to execute update for dashboard")
		return fmt.Errorf("failed to update dashboard (id=%d): %w", dashboard.ID, err)
	}

	return checkAffected(result, ErrDashboardNotFound)
}

// DeleteDashboard removes the dashboard's assignment rows first, then the
// dashboard row, inside one transaction.
//
// Returns [ErrDashboardNotFound] when no dashboard row matches the id; the
// transaction is rolled back in that case.
func (r *dashboardRepository) DeleteDashboard(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*dashboardRepository.DeleteDashboard").Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, clearAssignmentsByDashboard, id); err != nil {
		log.Err(err).Str("func", "*dashboardRepository.DeleteDashboard").Int64("id", id).Msg("failed to delete dashboard assignments")
		return fmt.Errorf("failed to delete dashboard assignments (id=%d): %w", id, err)
	}

	result, err := tx.ExecContext(ctx, deleteDashboard, id)
	if err != nil {
		log.Err(err).Str("func", "*dashboardRepository.DeleteDashboard").Int64("id", id).Msg("failed to delete dashboard")
		return fmt.Errorf("failed to delete dashboard (id=%d): %w", id, err)
	}

	if err := checkAffected(result, ErrDashboardNotFound); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*dashboardRepository.DeleteDashboard").Int64("id", id).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
