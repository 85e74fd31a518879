package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/models"
)

// credentialRepository is the SQLite-backed implementation of
// [CredentialRepository]. The durable tier lives in the local_users and
// local_kv tables; the ephemeral tier is the in-memory session field,
// guarded by mu because the autosave job and the UI loop may touch it from
// different goroutines.
type credentialRepository struct {
	*DB
	logger *logger.Logger

	mu        sync.RWMutex
	ephemeral *models.Session
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided local database.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *credentialRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listLocalUsers)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.ListUsers").
			Msg("failed to query local users")
		return nil, fmt.Errorf("failed to query local users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		var createdAt string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &createdAt); err != nil {
			log.Err(err).
				Str("func", "credentialRepository.ListUsers").
				Msg("failed to scan local user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			u.CreatedAt = t
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return users, nil
}

func (c *credentialRepository) SaveUsers(ctx context.Context, users []models.User) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.SaveUsers").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// full overwrite: the stored list mirrors the "users" storage key
	if _, err = tx.ExecContext(ctx, deleteAllLocalUsers); err != nil {
		return fmt.Errorf("failed to clear local users: %w", err)
	}

	for _, u := range users {
		_, err = tx.ExecContext(ctx, insertLocalUser,
			u.ID,
			u.Name,
			u.Email,
			u.Password,
			u.CreatedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			log.Err(err).
				Str("func", "credentialRepository.SaveUsers").
				Str("email", u.Email).
				Msg("failed to insert local user")
			return fmt.Errorf("failed to insert local user (email=%s): %w", u.Email, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (c *credentialRepository) SetSession(ctx context.Context, user models.UserSummary, remember bool) error {
	session := models.SessionFromSummary(user, time.Now())

	if remember {
		payload, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("encode session: %w", err)
		}
		if _, err = c.DB.ExecContext(ctx, upsertLocalKV, kvKeySession, string(payload)); err != nil {
			return fmt.Errorf("persist durable session: %w", err)
		}

		// tier exclusivity: durable write clears the ephemeral record
		c.mu.Lock()
		c.ephemeral = nil
		c.mu.Unlock()
		return nil
	}

	c.mu.Lock()
	c.ephemeral = &session
	c.mu.Unlock()

	if _, err := c.DB.ExecContext(ctx, deleteLocalKV, kvKeySession); err != nil {
		return fmt.Errorf("clear durable session: %w", err)
	}
	return nil
}

func (c *credentialRepository) ClearSession(ctx context.Context) error {
	c.mu.Lock()
	c.ephemeral = nil
	c.mu.Unlock()

	if _, err := c.DB.ExecContext(ctx, deleteLocalKV, kvKeySession); err != nil {
		return fmt.Errorf("clear durable session: %w", err)
	}
	return nil
}

func (c *credentialRepository) GetSession(ctx context.Context) (models.UserSummary, error) {
	c.mu.RLock()
	ephemeral := c.ephemeral
	c.mu.RUnlock()

	if ephemeral != nil {
		return ephemeral.Summary(), nil
	}

	var payload string
	err := c.DB.QueryRowContext(ctx, getLocalKV, kvKeySession).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserSummary{}, ErrLocalSessionNotFound
		}
		return models.UserSummary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var session models.Session
	if err = json.Unmarshal([]byte(payload), &session); err != nil {
		// corrupt durable state reads as absence
		logger.FromContext(ctx).Warn().
			Str("func", "credentialRepository.GetSession").
			Msg("unparsable durable session, treating as absent")
		return models.UserSummary{}, ErrLocalSessionNotFound
	}

	return session.Summary(), nil
}

func (c *credentialRepository) SetToken(ctx context.Context, token string) error {
	if _, err := c.DB.ExecContext(ctx, upsertLocalKV, kvKeyToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

func (c *credentialRepository) Token(ctx context.Context) (string, error) {
	var token string
	err := c.DB.QueryRowContext(ctx, getLocalKV, kvKeyToken).Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return token, nil
}
