package service

import (
	"context"

	"dashportal/internal/embedurl"
	"dashportal/internal/logger"
	"dashportal/internal/store"
	"dashportal/models"
)

// dashboardService implements the admin console's catalog workflows.
// Pasted iframe snippets are reduced to their bare src URL before storage,
// so the store only ever holds bare URLs.
type dashboardService struct {
	dashboardRepository store.DashboardRepository
	logger              *logger.Logger
}

func NewDashboardService(dashboardRepository store.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		dashboardRepository: dashboardRepository,
		logger:              logger,
	}
}

// CreateDashboard validates and persists a new catalog entry. Name and URL
// must be non-blank after normalization, otherwise [ErrInvalidDataProvided].
func (s *dashboardService) CreateDashboard(ctx context.Context, name, rawURL string) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	url := embedurl.ExtractSrc(rawURL)
	if name == "" || url == "" {
		return models.Dashboard{}, ErrInvalidDataProvided
	}

	created, err := s.dashboardRepository.CreateDashboard(ctx, models.Dashboard{Name: name, EmbedURL: url})
	if err != nil {
		log.Err(err).Str("name", name).Msg("dashboard creation ended with error")
		return models.Dashboard{}, err
	}

	log.Info().Int64("id", created.ID).Str("name", created.Name).Msg("dashboard created")
	return created, nil
}

// UpdateDashboard changes name and embed URL of an existing entry, applying
// the same normalization and validation as CreateDashboard.
func (s *dashboardService) UpdateDashboard(ctx context.Context, id int64, name, rawURL string) error {
	log := logger.FromContext(ctx)

	url := embedurl.ExtractSrc(rawURL)
	if name == "" || url == "" {
		return ErrInvalidDataProvided
	}

	if err := s.dashboardRepository.UpdateDashboard(ctx, models.Dashboard{ID: id, Name: name, EmbedURL: url}); err != nil {
		log.Err(err).Int64("id", id).Msg("dashboard update ended with error")
		return err
	}

	log.Info().Int64("id", id).Msg("dashboard updated")
	return nil
}

// DeleteDashboard removes the entry and its assignments. The confirm flag
// must be set, otherwise [ErrConfirmationRequired] and nothing is mutated.
func (s *dashboardService) DeleteDashboard(ctx context.Context, id int64, confirm bool) error {
	log := logger.FromContext(ctx)

	if !confirm {
		return ErrConfirmationRequired
	}

	if err := s.dashboardRepository.DeleteDashboard(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("dashboard deletion ended with error")
		return err
	}

	log.Info().Int64("id", id).Msg("dashboard deleted")
	return nil
}

// ListDashboards returns the whole catalog ordered by name.
func (s *dashboardService) ListDashboards(ctx context.Context) ([]models.Dashboard, error) {
	return s.dashboardRepository.ListDashboards(ctx)
}

// GetDashboard returns one catalog entry by id.
func (s *dashboardService) GetDashboard(ctx context.Context, id int64) (models.Dashboard, error) {
	return s.dashboardRepository.FindDashboardByID(ctx, id)
}
