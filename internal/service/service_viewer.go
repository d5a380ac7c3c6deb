package service

import (
	"context"

	"dashportal/internal/embedurl"
	"dashportal/internal/logger"
	"dashportal/internal/store"
	"dashportal/models"
)

// viewerService serves the logged-in user's dashboard page: the list of
// assigned dashboards and the render-ready view of a selected one.
type viewerService struct {
	assignmentRepository store.AssignmentRepository
	logger               *logger.Logger
}

func NewViewerService(assignmentRepository store.AssignmentRepository, logger *logger.Logger) ViewerService {
	return &viewerService{
		assignmentRepository: assignmentRepository,
		logger:               logger,
	}
}

// AssignedDashboards lists the dashboards visible to the user, ordered by
// name. An empty list is a valid result; the caller informs the user.
func (s *viewerService) AssignedDashboards(ctx context.Context, userID int64) ([]models.Dashboard, error) {
	return s.assignmentRepository.ListAssignedDashboards(ctx, userID)
}

// ResolveDashboard returns the embeddable view of one assigned dashboard.
// The stored URL is passed through iframe extraction and the provider
// display parameters are appended; the result embeds in a fixed-height,
// non-scrolling frame.
//
// Returns [ErrNotAssigned] when the dashboard is not in the user's set, so
// a viewer can never resolve a dashboard they were not granted.
func (s *viewerService) ResolveDashboard(ctx context.Context, userID, dashboardID int64) (models.DashboardView, error) {
	log := logger.FromContext(ctx)

	assigned, err := s.assignmentRepository.ListAssignedDashboards(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("assigned dashboard lookup failed")
		return models.DashboardView{}, err
	}

	for _, dashboard := range assigned {
		if dashboard.ID != dashboardID {
			continue
		}

		return models.DashboardView{
			ID:          dashboard.ID,
			Name:        dashboard.Name,
			FrameSrc:    embedurl.Normalize(dashboard.EmbedURL),
			FrameHeight: models.FrameHeight,
			Scrolling:   false,
		}, nil
	}

	log.Warn().Int64("user_id", userID).Int64("dashboard_id", dashboardID).Msg("dashboard not assigned to user")
	return models.DashboardView{}, ErrNotAssigned
}
