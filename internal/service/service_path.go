// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/store"
	"github.com/pathforge/pathforge/models"
)

// Defaults applied when a user generates a path before completing every
// onboarding section.
const (
	defaultTargetRole   = "Full Stack Developer"
	defaultLearningPace = "moderate"
	defaultDailyHours   = 2
)

type pathService struct {
	profiles store.ProfileRepository
	paths    store.PathRepository
	logger   *logger.Logger
}

// NewPathService wires path generation to the profile and path repositories.
func NewPathService(profiles store.ProfileRepository, paths store.PathRepository, logger *logger.Logger) PathService {
	return &pathService{profiles: profiles, paths: paths, logger: logger}
}

// Generate implements [PathService]. The curriculum is built from a fixed
// role-keyed template, scaled by the user's proficiency (derived from skill
// count) and learning pace, then persisted as the active path for the
// target role.
func (s *pathService) Generate(ctx context.Context, userID int64) (models.LearningPath, error) {
	log := logger.FromContext(ctx)

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNoProfileWasFound) {
		return models.LearningPath{}, fmt.Errorf("load profile: %w", err)
	}

	role := profile.TargetRole
	if role == "" {
		role = defaultTargetRole
	}
	pace := profile.LearningPace
	if pace == "" {
		pace = defaultLearningPace
	}
	dailyHours := profile.DailyHours
	if dailyHours <= 0 {
		dailyHours = defaultDailyHours
	}

	path := buildPath(role, pace, dailyHours, profile.Skills)

	saved, err := s.paths.SavePath(ctx, userID, path)
	if err != nil {
		return models.LearningPath{}, fmt.Errorf("save path: %w", err)
	}

	log.Info().
		Int64("user_id", userID).
		Str("target_role", role).
		Int("modules", len(saved.Curriculum.Modules)).
		Int("weeks", saved.EstimatedDurationWeeks).
		Msg("learning path generated")

	return saved, nil
}

// ActivePath implements [PathService].
func (s *pathService) ActivePath(ctx context.Context, userID int64) (models.LearningPath, error) {
	return s.paths.GetActivePath(ctx, userID)
}

// buildPath assembles a concrete path from the role's template. Topic hours
// scale with proficiency, the total duration with pace and daily hours.
func buildPath(role, pace string, dailyHours int, skills []string) models.LearningPath {
	tpl := templateForRole(role)
	proficiency := proficiencyFor(skills)
	hoursScale := proficiencyMultiplier(proficiency)

	var totalHours float64
	modules := make([]models.Module, 0, len(tpl.Modules))
	for _, m := range tpl.Modules {
		var moduleHours float64
		topics := make([]models.Topic, 0, len(m.Topics))
		for _, t := range m.Topics {
			hours := round1(t.BaseHours * hoursScale)
			topics = append(topics, models.Topic{
				Title:          t.Title,
				EstimatedHours: hours,
			})
			moduleHours += hours
		}
		modules = append(modules, models.Module{
			Title:          m.Title,
			EstimatedHours: round1(moduleHours),
			Difficulty:     m.Difficulty,
			Description:    m.Description,
			Topics:         topics,
		})
		totalHours += moduleHours
	}

	weeks := totalHours / float64(dailyHours) / 7 * paceMultiplier(pace)

	return models.LearningPath{
		Title:                  fmt.Sprintf("%s (%s)", tpl.Title, role),
		Description:            tpl.Description,
		TargetRole:             role,
		EstimatedDurationWeeks: int(math.Ceil(weeks)),
		DifficultyLevel:        proficiency,
		Curriculum:             models.Curriculum{Modules: modules},
	}
}

// proficiencyFor derives the user's starting level from how many skills
// they reported.
func proficiencyFor(skills []string) string {
	switch {
	case len(skills) >= 10:
		return "advanced"
	case len(skills) >= 5:
		return "intermediate"
	default:
		return "beginner"
	}
}

func proficiencyMultiplier(proficiency string) float64 {
	switch proficiency {
	case "advanced":
		return 0.7
	case "intermediate":
		return 1.0
	default:
		return 1.5
	}
}

func paceMultiplier(pace string) float64 {
	switch pace {
	case "intensive":
		return 0.8
	case "relaxed", "casual":
		return 1.2
	default:
		return 1.0
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
