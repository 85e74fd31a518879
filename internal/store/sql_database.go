package store

import (
	"database/sql"

	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/migrations"
)

// DB wraps *sql.DB with the application logger. All repositories embed it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// MigrateServer applies the server schema (users, profiles, learning_paths).
func (db *DB) MigrateServer() error {
	return migrations.Server(db.DB)
}

// MigrateClient applies the client local store schema (local_users, local_kv).
func (db *DB) MigrateClient() error {
	return migrations.Client(db.DB)
}
