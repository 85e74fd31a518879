// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/mock"
	"github.com/pathforge/pathforge/internal/store"
	"github.com/pathforge/pathforge/models"
)

func newTestPathSvc(t *testing.T, ctrl *gomock.Controller) (PathService, *mock.MockProfileRepository, *mock.MockPathRepository) {
	t.Helper()
	mockProfiles := mock.NewMockProfileRepository(ctrl)
	mockPaths := mock.NewMockPathRepository(ctrl)
	svc := NewPathService(mockProfiles, mockPaths, logger.NewLogger("test"))
	return svc, mockProfiles, mockPaths
}

func skillList(n int) []string {
	skills := make([]string, 0, n)
	for i := 0; i < n; i++ {
		skills = append(skills, fmt.Sprintf("skill-%d", i))
	}
	return skills
}

// ---------------------------------------------------------------------------
// TestTemplateForRole
// ---------------------------------------------------------------------------

func TestTemplateForRole(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"Frontend Developer", frontendTemplate.Title},
		{"Backend Developer", backendTemplate.Title},
		{"Data Scientist", datascienceTemplate.Title},
		{"Machine Learning Engineer", datascienceTemplate.Title},
		{"DevOps Engineer", devopsTemplate.Title},
		{"Mobile Developer", mobileTemplate.Title},
		{"Full Stack Developer", fullstackTemplate.Title},
		{"Something Else", fullstackTemplate.Title},
	}

	for _, tc := range tests {
		t.Run(tc.role, func(t *testing.T) {
			assert.Equal(t, tc.want, templateForRole(tc.role).Title)
		})
	}
}

// ---------------------------------------------------------------------------
// TestProficiency
// ---------------------------------------------------------------------------

func TestProficiencyFor(t *testing.T) {
	assert.Equal(t, "beginner", proficiencyFor(nil))
	assert.Equal(t, "beginner", proficiencyFor(skillList(4)))
	assert.Equal(t, "intermediate", proficiencyFor(skillList(5)))
	assert.Equal(t, "intermediate", proficiencyFor(skillList(9)))
	assert.Equal(t, "advanced", proficiencyFor(skillList(10)))
}

func TestProficiencyMultiplier(t *testing.T) {
	assert.Equal(t, 0.7, proficiencyMultiplier("advanced"))
	assert.Equal(t, 1.0, proficiencyMultiplier("intermediate"))
	assert.Equal(t, 1.5, proficiencyMultiplier("beginner"))
}

func TestPaceMultiplier(t *testing.T) {
	assert.Equal(t, 0.8, paceMultiplier("intensive"))
	assert.Equal(t, 1.2, paceMultiplier("relaxed"))
	assert.Equal(t, 1.2, paceMultiplier("casual"))
	assert.Equal(t, 1.0, paceMultiplier("moderate"))
	assert.Equal(t, 1.0, paceMultiplier(""))
}

// ---------------------------------------------------------------------------
// TestBuildPath
// ---------------------------------------------------------------------------

func TestBuildPath(t *testing.T) {
	t.Run("deterministic output", func(t *testing.T) {
		a := buildPath("Backend Developer", "moderate", 2, skillList(6))
		b := buildPath("Backend Developer", "moderate", 2, skillList(6))
		assert.Equal(t, a, b)
	})

	t.Run("beginner hours scale up", func(t *testing.T) {
		beginner := buildPath("Backend Developer", "moderate", 2, nil)
		intermediate := buildPath("Backend Developer", "moderate", 2, skillList(6))

		assert.Equal(t, "beginner", beginner.DifficultyLevel)
		assert.Equal(t, "intermediate", intermediate.DifficultyLevel)

		bh := beginner.Curriculum.Modules[0].Topics[0].EstimatedHours
		ih := intermediate.Curriculum.Modules[0].Topics[0].EstimatedHours
		assert.Equal(t, ih*1.5, bh)
	})

	t.Run("pace stretches duration", func(t *testing.T) {
		intensive := buildPath("Backend Developer", "intensive", 2, skillList(6))
		relaxed := buildPath("Backend Developer", "relaxed", 2, skillList(6))
		assert.Greater(t, relaxed.EstimatedDurationWeeks, intensive.EstimatedDurationWeeks)
	})

	t.Run("more daily hours means fewer weeks", func(t *testing.T) {
		light := buildPath("Backend Developer", "moderate", 1, skillList(6))
		heavy := buildPath("Backend Developer", "moderate", 4, skillList(6))
		assert.Greater(t, light.EstimatedDurationWeeks, heavy.EstimatedDurationWeeks)
	})

	t.Run("title embeds the role", func(t *testing.T) {
		path := buildPath("Backend Developer", "moderate", 2, nil)
		assert.Contains(t, path.Title, "Backend Developer")
		assert.Equal(t, "Backend Developer", path.TargetRole)
		assert.NotEmpty(t, path.Curriculum.Modules)
	})

	t.Run("module hours equal the sum of topic hours", func(t *testing.T) {
		path := buildPath("DevOps Engineer", "moderate", 2, nil)
		for _, m := range path.Curriculum.Modules {
			var sum float64
			for _, topic := range m.Topics {
				sum += topic.EstimatedHours
			}
			assert.InDelta(t, sum, m.EstimatedHours, 0.05, "module %q", m.Title)
		}
	})
}

// ---------------------------------------------------------------------------
// TestPathService_Generate
// ---------------------------------------------------------------------------

func TestPathService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProfiles, mockPaths := newTestPathSvc(t, ctrl)
	ctx := context.Background()

	t.Run("uses the stored profile", func(t *testing.T) {
		profile := models.Profile{
			UserID:       7,
			TargetRole:   "Data Scientist",
			Skills:       skillList(10),
			LearningPace: "intensive",
			DailyHours:   3,
		}
		mockProfiles.EXPECT().GetProfile(ctx, int64(7)).Return(profile, nil)
		mockPaths.EXPECT().SavePath(ctx, int64(7), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, p models.LearningPath) (models.LearningPath, error) {
				assert.Equal(t, "Data Scientist", p.TargetRole)
				assert.Equal(t, "advanced", p.DifficultyLevel)
				p.ID = 1
				return p, nil
			},
		)

		path, err := svc.Generate(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(1), path.ID)
	})

	t.Run("missing profile falls back to defaults", func(t *testing.T) {
		mockProfiles.EXPECT().GetProfile(ctx, int64(8)).Return(models.Profile{}, store.ErrNoProfileWasFound)
		mockPaths.EXPECT().SavePath(ctx, int64(8), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, p models.LearningPath) (models.LearningPath, error) {
				assert.Equal(t, "Full Stack Developer", p.TargetRole)
				assert.Equal(t, "beginner", p.DifficultyLevel)
				return p, nil
			},
		)

		_, err := svc.Generate(ctx, 8)
		require.NoError(t, err)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		mockProfiles.EXPECT().GetProfile(ctx, int64(9)).Return(models.Profile{}, errors.New("db gone"))

		_, err := svc.Generate(ctx, 9)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load profile")
	})
}

// ---------------------------------------------------------------------------
// TestPathService_ActivePath
// ---------------------------------------------------------------------------

func TestPathService_ActivePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockPaths := newTestPathSvc(t, ctrl)
	ctx := context.Background()

	mockPaths.EXPECT().GetActivePath(ctx, int64(7)).Return(models.LearningPath{}, store.ErrNoPathWasFound)

	_, err := svc.ActivePath(ctx, 7)
	require.ErrorIs(t, err, store.ErrNoPathWasFound)
}
