// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/models"
)

type pathRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPathRepository constructs a [PathRepository] backed by the provided
// database connection and logger.
func NewPathRepository(db *DB, logger *logger.Logger) PathRepository {
	logger.Debug().Msg("creating path repository")
	return &pathRepository{
		db:     db,
		logger: logger,
	}
}

// SavePath stores a freshly generated path. Any previously active path for
// the same user and target role is deactivated in the same transaction, so
// regeneration replaces rather than accumulates.
func (r *pathRepository) SavePath(ctx context.Context, userID int64, path models.LearningPath) (models.LearningPath, error) {
	log := logger.FromContext(ctx)

	curriculum, err := json.Marshal(path.Curriculum)
	if err != nil {
		return models.LearningPath{}, fmt.Errorf("encode curriculum: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*pathRepository.SavePath").Msg("error: beginning transaction error")
		return models.LearningPath{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	deactivate, deactivateArgs, err := sq.Update("learning_paths").
		Set("is_active", 0).
		Where(sq.Eq{"user_id": userID, "target_role": path.TargetRole, "is_active": 1}).
		ToSql()
	if err != nil {
		return models.LearningPath{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deactivate, deactivateArgs...); err != nil {
		log.Err(err).Str("func", "*pathRepository.SavePath").Msg("failed to deactivate previous path")
		return models.LearningPath{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	createdAt := time.Now().UTC()
	insert, insertArgs, err := sq.Insert("learning_paths").
		Columns("user_id", "title", "description", "target_role", "estimated_duration_weeks", "difficulty_level", "curriculum_data", "is_active", "created_at").
		Values(userID, path.Title, path.Description, path.TargetRole, path.EstimatedDurationWeeks, path.DifficultyLevel, string(curriculum), 1, createdAt.Format(time.RFC3339Nano)).
		ToSql()
	if err != nil {
		return models.LearningPath{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := tx.ExecContext(ctx, insert, insertArgs...)
	if err != nil {
		log.Err(err).Str("func", "*pathRepository.SavePath").Msg("failed to insert learning path")
		return models.LearningPath{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.LearningPath{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*pathRepository.SavePath").Msg("error: committing transaction error")
		return models.LearningPath{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	path.ID = id
	path.CreatedAt = createdAt
	return path, nil
}

// GetActivePath returns the user's most recently created active path.
func (r *pathRepository) GetActivePath(ctx context.Context, userID int64) (models.LearningPath, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("title", "description", "target_role", "estimated_duration_weeks", "difficulty_level", "curriculum_data").
		From("learning_paths").
		Where(sq.Eq{"user_id": userID, "is_active": 1}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.LearningPath{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		path       models.LearningPath
		curriculum string
	)
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&path.Title,
		&path.Description,
		&path.TargetRole,
		&path.EstimatedDurationWeeks,
		&path.DifficultyLevel,
		&curriculum,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LearningPath{}, ErrNoPathWasFound
		}
		log.Err(err).Str("func", "*pathRepository.GetActivePath").Msg("error: scanning error")
		return models.LearningPath{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(curriculum), &path.Curriculum); err != nil {
		log.Err(err).Str("func", "*pathRepository.GetActivePath").Msg("stored curriculum is not valid JSON")
		return models.LearningPath{}, fmt.Errorf("decode curriculum: %w", err)
	}

	return path, nil
}
