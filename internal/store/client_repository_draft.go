package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/models"
)

// draftRepository stores the onboarding draft as a JSON blob under the
// learningPath_draft key of the local_kv table.
type draftRepository struct {
	*DB
	logger *logger.Logger
}

// NewDraftRepository constructs a [DraftRepository] backed by the provided
// local database.
func NewDraftRepository(db *DB, logger *logger.Logger) DraftRepository {
	return &draftRepository{
		DB:     db,
		logger: logger,
	}
}

func (d *draftRepository) SaveDraft(ctx context.Context, draft models.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}

	if _, err = d.DB.ExecContext(ctx, upsertLocalKV, kvKeyDraft, string(payload)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "draftRepository.SaveDraft").
			Msg("failed to persist draft")
		return fmt.Errorf("persist draft: %w", err)
	}

	return nil
}

func (d *draftRepository) LoadDraft(ctx context.Context) (models.Draft, error) {
	var payload string
	err := d.DB.QueryRowContext(ctx, getLocalKV, kvKeyDraft).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Draft{}, ErrDraftNotFound
		}
		return models.Draft{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var draft models.Draft
	if err = json.Unmarshal([]byte(payload), &draft); err != nil {
		// corrupt drafts read as absence, same as the session record
		logger.FromContext(ctx).Warn().
			Str("func", "draftRepository.LoadDraft").
			Msg("unparsable draft, treating as absent")
		return models.Draft{}, ErrDraftNotFound
	}

	return draft, nil
}

func (d *draftRepository) ClearDraft(ctx context.Context) error {
	if _, err := d.DB.ExecContext(ctx, deleteLocalKV, kvKeyDraft); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
