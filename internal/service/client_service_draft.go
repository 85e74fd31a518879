package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/store"
	"github.com/pathforge/pathforge/models"
)

type draftService struct {
	drafts store.DraftRepository
	ttl    time.Duration
	logger *logger.Logger

	now func() time.Time
}

// NewDraftService wires draft persistence to the local store. ttl bounds how
// old a stored draft may be before Load treats it as absent; zero or
// negative falls back to models.DraftMaxAge.
func NewDraftService(drafts store.DraftRepository, ttl time.Duration, logger *logger.Logger) DraftService {
	if ttl <= 0 {
		ttl = models.DraftMaxAge
	}
	return &draftService{
		drafts: drafts,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Save implements [DraftService]. The draft is stamped with the current time
// before writing. Repeated saves overwrite the same record.
func (s *draftService) Save(ctx context.Context, draft models.Draft) error {
	draft.SavedAt = s.now()

	if err := s.drafts.SaveDraft(ctx, draft); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Load implements [DraftService]. A draft older than the TTL is removed and
// reported as store.ErrDraftNotFound, so the caller never sees a stale
// resume prompt.
func (s *draftService) Load(ctx context.Context) (models.Draft, error) {
	draft, err := s.drafts.LoadDraft(ctx)
	if err != nil {
		return models.Draft{}, err
	}

	if s.now().Sub(draft.SavedAt) > s.ttl {
		if err := s.drafts.ClearDraft(ctx); err != nil && !errors.Is(err, store.ErrDraftNotFound) {
			s.logger.Warn().Err(err).Msg("failed to clear stale draft")
		}
		return models.Draft{}, store.ErrDraftNotFound
	}

	return draft, nil
}

// Clear implements [DraftService].
func (s *draftService) Clear(ctx context.Context) error {
	return s.drafts.ClearDraft(ctx)
}
