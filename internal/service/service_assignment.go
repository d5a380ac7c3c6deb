package service

import (
	"context"

	"dashportal/internal/logger"
	"dashportal/internal/store"
	"dashportal/models"
)

// assignmentService implements the admin console's user↔dashboard linking.
// It is a thin layer over the repository: the interesting invariants
// (atomic replace, cascade on delete) live in the store.
type assignmentService struct {
	assignmentRepository store.AssignmentRepository
	logger               *logger.Logger
}

func NewAssignmentService(assignmentRepository store.AssignmentRepository, logger *logger.Logger) AssignmentService {
	return &assignmentService{
		assignmentRepository: assignmentRepository,
		logger:               logger,
	}
}

// ListForUser returns the dashboards currently assigned to the user.
func (s *assignmentService) ListForUser(ctx context.Context, userID int64) ([]models.Dashboard, error) {
	return s.assignmentRepository.ListAssignedDashboards(ctx, userID)
}

// ReplaceForUser replaces the user's entire assignment set atomically as
// delete-then-insert.
func (s *assignmentService) ReplaceForUser(ctx context.Context, userID int64, dashboardIDs []int64) error {
	log := logger.FromContext(ctx)

	if err := s.assignmentRepository.ReplaceAssignments(ctx, userID, dashboardIDs); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("assignment replace ended with error")
		return err
	}

	log.Info().Int64("user_id", userID).Int("count", len(dashboardIDs)).Msg("assignments replaced")
	return nil
}

// ClearForUser deletes every assignment of the user.
func (s *assignmentService) ClearForUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.assignmentRepository.ClearAssignments(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("assignment clear ended with error")
		return err
	}

	log.Info().Int64("user_id", userID).Msg("assignments cleared")
	return nil
}

// Summary lists every (username, dashboard-name) pair via a left join.
func (s *assignmentService) Summary(ctx context.Context) ([]models.AssignmentSummary, error) {
	return s.assignmentRepository.Summary(ctx)
}
