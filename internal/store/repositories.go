package store

import "dashportal/internal/logger"

// Repositories bundles every persistence contract of the portal, wired to a
// single shared connection pool.
type Repositories struct {
	UserRepository       UserRepository
	DashboardRepository  DashboardRepository
	AssignmentRepository AssignmentRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db, logger),
		DashboardRepository:  NewDashboardRepository(db, logger),
		AssignmentRepository: NewAssignmentRepository(db, logger),
	}
}
