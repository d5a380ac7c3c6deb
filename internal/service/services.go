package service

import (
	"dashportal/internal/config"
	"dashportal/internal/logger"
	"dashportal/internal/store"
)

// Services bundles every business-logic service of the portal.
type Services struct {
	AuthService       AuthService
	UserService       UserService
	DashboardService  DashboardService
	AssignmentService AssignmentService
	ViewerService     ViewerService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	authService := NewAuthService(repositories.UserRepository, cfg.Auth, logger)

	return &Services{
		AuthService:       authService,
		UserService:       NewUserService(repositories.UserRepository, authService, logger),
		DashboardService:  NewDashboardService(repositories.DashboardRepository, logger),
		AssignmentService: NewAssignmentService(repositories.AssignmentRepository, logger),
		ViewerService:     NewViewerService(repositories.AssignmentRepository, logger),
	}
}
