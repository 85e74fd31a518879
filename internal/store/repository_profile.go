package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/models"
)

// profileRepository stores onboarding sections in the profiles table, one
// row per user, upserted section by section as the wizard submits them.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *profileRepository) SaveGoal(ctx context.Context, userID int64, goal models.GoalRequest) error {
	return r.upsertSection(ctx, userID, map[string]any{
		"goal":        goal.Goal,
		"target_role": goal.TargetRole,
	})
}

func (r *profileRepository) SaveSkills(ctx context.Context, userID int64, skills []string) error {
	payload, err := json.Marshal(skills)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}
	return r.upsertSection(ctx, userID, map[string]any{
		"skills": string(payload),
	})
}

func (r *profileRepository) SavePreferences(ctx context.Context, userID int64, prefs models.PreferencesRequest) error {
	payload, err := json.Marshal(prefs.PreferredContent)
	if err != nil {
		return fmt.Errorf("encode preferred content: %w", err)
	}
	return r.upsertSection(ctx, userID, map[string]any{
		"learning_pace":     prefs.LearningPace,
		"daily_hours":       prefs.DailyHours,
		"preferred_content": string(payload),
	})
}

func (r *profileRepository) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("user_id", "goal", "target_role", "skills", "learning_pace", "daily_hours", "preferred_content").
		From("profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		profile          models.Profile
		skills           string
		preferredContent string
	)
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&profile.UserID,
		&profile.Goal,
		&profile.TargetRole,
		&skills,
		&profile.LearningPace,
		&profile.DailyHours,
		&preferredContent,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrNoProfileWasFound
		}
		log.Err(err).Str("func", "*profileRepository.GetProfile").Msg("error: scanning error")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	// stored JSON lists; empty strings mean the section was never saved
	if skills != "" {
		_ = json.Unmarshal([]byte(skills), &profile.Skills)
	}
	if preferredContent != "" {
		_ = json.Unmarshal([]byte(preferredContent), &profile.PreferredContent)
	}

	return profile, nil
}

// upsertSection writes the given columns for the user, creating the profile
// row on first use. SQLite's ON CONFLICT DO UPDATE keeps each section write
// independent of the others.
func (r *profileRepository) upsertSection(ctx context.Context, userID int64, columns map[string]any) error {
	log := logger.FromContext(ctx)

	assignments := make([]string, 0, len(columns))
	cols := make([]string, 0, len(columns))
	vals := make([]any, 0, len(columns))
	for col, val := range columns {
		cols = append(cols, col)
		vals = append(vals, val)
		assignments = append(assignments, col+" = excluded."+col)
	}

	insert := sq.Insert("profiles").
		Columns(append([]string{"user_id"}, cols...)...).
		Values(append([]any{userID}, vals...)...)

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query += " ON CONFLICT (user_id) DO UPDATE SET " + strings.Join(assignments, ", ")

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*profileRepository.upsertSection").
			Int64("user_id", userID).
			Msg("failed to upsert profile section")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
