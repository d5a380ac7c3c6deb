package store

import (
	"database/sql"

	"dashportal/internal/logger"
	"dashportal/migrations"
)

// DB wraps the process-wide connection pool. It is constructed once at
// startup and shared by reference with every repository.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
