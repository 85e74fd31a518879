package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/store"
	"github.com/pathforge/pathforge/models"
)

type onboardingService struct {
	profiles store.ProfileRepository
	logger   *logger.Logger
}

// NewOnboardingService wires the onboarding section writes to the profile
// repository.
func NewOnboardingService(profiles store.ProfileRepository, logger *logger.Logger) OnboardingService {
	return &onboardingService{profiles: profiles, logger: logger}
}

// SaveGoal implements [OnboardingService]. A goal submission with neither a
// goal text nor a target role is rejected.
func (s *onboardingService) SaveGoal(ctx context.Context, userID int64, req models.GoalRequest) error {
	req.Goal = strings.TrimSpace(req.Goal)
	req.TargetRole = strings.TrimSpace(req.TargetRole)
	if req.Goal == "" && req.TargetRole == "" {
		return ErrInvalidDataProvided
	}

	if err := s.profiles.SaveGoal(ctx, userID, req); err != nil {
		return fmt.Errorf("save goal: %w", err)
	}
	return nil
}

// SaveSkills implements [OnboardingService]. An empty list is a valid
// submission: the skills step can be skipped.
func (s *onboardingService) SaveSkills(ctx context.Context, userID int64, req models.SkillsRequest) error {
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	if err := s.profiles.SaveSkills(ctx, userID, skills); err != nil {
		return fmt.Errorf("save skills: %w", err)
	}
	return nil
}

// SavePreferences implements [OnboardingService].
func (s *onboardingService) SavePreferences(ctx context.Context, userID int64, req models.PreferencesRequest) error {
	if req.DailyHours < 0 {
		return ErrInvalidDataProvided
	}

	if err := s.profiles.SavePreferences(ctx, userID, req); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Status implements [OnboardingService]. A user with no profile row reports
// every section as incomplete.
func (s *onboardingService) Status(ctx context.Context, userID int64) (models.StatusResponse, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoProfileWasFound) {
			return models.StatusResponse{}, nil
		}
		return models.StatusResponse{}, fmt.Errorf("get profile: %w", err)
	}

	status := profile.Status()
	return models.StatusResponse{
		Status:    status,
		Completed: status.Goal && status.Skills && status.Preferences,
	}, nil
}
