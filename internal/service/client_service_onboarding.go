package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pathforge/pathforge/internal/adapter"
	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/store"
	"github.com/pathforge/pathforge/models"
)

type onboardingSubmitter struct {
	adapter adapter.ServerAdapter
	drafts  DraftService
	logger  *logger.Logger
}

// NewOnboardingSubmitter wires the submission sequence to the server adapter
// and the draft service used to discard the draft after a successful run.
func NewOnboardingSubmitter(serverAdapter adapter.ServerAdapter, drafts DraftService, logger *logger.Logger) OnboardingSubmitter {
	return &onboardingSubmitter{adapter: serverAdapter, drafts: drafts, logger: logger}
}

// Submit implements [OnboardingSubmitter]. The four calls run strictly in
// sequence: goal, skills, preferences, generate. The first failure aborts
// the rest and leaves the draft in place so the user can retry.
func (s *onboardingSubmitter) Submit(ctx context.Context, draft models.Draft) error {
	if draft.Role == "" {
		return ErrRoleRequired
	}

	goal := models.GoalRequest{
		Goal:       "Become a " + draft.Role,
		TargetRole: draft.Role,
	}
	if err := s.adapter.SaveGoal(ctx, goal); err != nil {
		return fmt.Errorf("%w: goal: %w", ErrSubmissionFailed, mapAdapterError(err))
	}

	if err := s.adapter.SaveSkills(ctx, models.SkillsRequest{Skills: draft.Skills}); err != nil {
		return fmt.Errorf("%w: skills: %w", ErrSubmissionFailed, mapAdapterError(err))
	}

	prefs := models.PreferencesRequest{
		LearningPace:     draft.Preferences.LearningPace,
		DailyHours:       draft.Preferences.DailyHours,
		PreferredContent: draft.Preferences.PreferredContent,
	}
	if err := s.adapter.SavePreferences(ctx, prefs); err != nil {
		return fmt.Errorf("%w: preferences: %w", ErrSubmissionFailed, mapAdapterError(err))
	}

	if err := s.adapter.GeneratePath(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrGenerationFailed, mapAdapterError(err))
	}

	if err := s.drafts.Clear(ctx); err != nil && !errors.Is(err, store.ErrDraftNotFound) {
		s.logger.Warn().Err(err).Msg("failed to discard draft after submission")
	}

	return nil
}

// FetchPath implements [OnboardingSubmitter].
func (s *onboardingSubmitter) FetchPath(ctx context.Context) (models.LearningPath, error) {
	path, err := s.adapter.GetPath(ctx)
	if err != nil {
		return models.LearningPath{}, fmt.Errorf("fetch path: %w", mapAdapterError(err))
	}
	return path, nil
}
