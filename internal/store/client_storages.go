package store

import (
	"context"
	"fmt"

	"github.com/pathforge/pathforge/internal/config"
	"github.com/pathforge/pathforge/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// Credentials is the SQLite-backed credential store: local user list,
	// two-tier session record, bearer token.
	Credentials CredentialRepository

	// Drafts persists the in-progress onboarding draft.
	Drafts DraftRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path in cfg.DB.DSN, creating
//     the database file if it does not yet exist.
//  2. Runs pending client schema migrations via [DB.MigrateClient].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("local sqlite connection error: %w", err)
	}

	if err := db.MigrateClient(); err != nil {
		return nil, fmt.Errorf("client migration failed: %w", err)
	}

	return &ClientStorages{
		Credentials: NewCredentialRepository(db, logger),
		Drafts:      NewDraftRepository(db, logger),
	}, nil
}
