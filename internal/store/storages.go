package store

import (
	"context"
	"fmt"

	"github.com/pathforge/pathforge/internal/config"
	"github.com/pathforge/pathforge/internal/logger"
)

// Storages groups the server-side repositories into a single value that the
// service layer receives at startup.
type Storages struct {
	Users    UserRepository
	Profiles ProfileRepository
	Paths    PathRepository
}

// NewStorages opens the server SQLite database, runs pending schema
// migrations, and wires the repositories. Returns an error if the connection
// cannot be established or migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateServer(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Users:    NewUserRepository(db, logger),
		Profiles: NewProfileRepository(db, logger),
		Paths:    NewPathRepository(db, logger),
	}, nil
}
