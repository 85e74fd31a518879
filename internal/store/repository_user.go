package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// Queries are built with squirrel; all methods obtain a context-scoped
// logger via [logger.FromContext] for request-level tracing.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record.
//
// Error handling:
//   - SQLite unique violation on email/username → ErrEmailAlreadyExists or
//     ErrUsernameAlreadyExists, decided by the violated constraint.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	query, args, err := sq.Insert(user.TableName()).
		Columns("username", "email", "password_hash", "created_at", "last_active").
		Values(user.Name, user.Email, passwordHash, now, now).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("user insert failed")

		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "email") {
				return models.User{}, ErrEmailAlreadyExists
			}
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user.ID = id
	user.CreatedAt = now
	user.Password = ""
	return user, nil
}

// FindUserByEmail retrieves a user by exact match on the stored email.
// Emails are lowercased before INSERT, so the match is effectively
// case-sensitive over lowercase values.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "username", "email", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return models.User{}, "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user models.User
		hash string
	)
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &hash, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, hash, nil
}

// FindUserByID retrieves a user by primary key.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "username", "email", "created_at").
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// UpdateLastActive stamps last_active with the current time.
func (r *userRepository) UpdateLastActive(ctx context.Context, userID int64) error {
	query, args, err := sq.Update("users").
		Set("last_active", time.Now().UTC()).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update last_active: %w", err)
	}
	return nil
}
