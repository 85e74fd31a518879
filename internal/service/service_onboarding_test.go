package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/mock"
	"github.com/pathforge/pathforge/internal/store"
	"github.com/pathforge/pathforge/models"
)

func newTestOnboardingSvc(t *testing.T, ctrl *gomock.Controller) (OnboardingService, *mock.MockProfileRepository) {
	t.Helper()
	mockProfiles := mock.NewMockProfileRepository(ctrl)
	svc := NewOnboardingService(mockProfiles, logger.NewLogger("test"))
	return svc, mockProfiles
}

func TestOnboardingService_SaveGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProfiles := newTestOnboardingSvc(t, ctrl)
	ctx := context.Background()

	t.Run("valid goal", func(t *testing.T) {
		req := models.GoalRequest{Goal: "Become a Backend Developer", TargetRole: "Backend Developer"}
		mockProfiles.EXPECT().SaveGoal(ctx, int64(1), req).Return(nil)

		require.NoError(t, svc.SaveGoal(ctx, 1, req))
	})

	t.Run("role only is enough", func(t *testing.T) {
		mockProfiles.EXPECT().SaveGoal(ctx, int64(1), gomock.Any()).Return(nil)

		require.NoError(t, svc.SaveGoal(ctx, 1, models.GoalRequest{TargetRole: "Data Scientist"}))
	})

	t.Run("blank submission is rejected", func(t *testing.T) {
		err := svc.SaveGoal(ctx, 1, models.GoalRequest{Goal: "   ", TargetRole: ""})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		mockProfiles.EXPECT().SaveGoal(ctx, int64(1), gomock.Any()).Return(errors.New("db gone"))

		err := svc.SaveGoal(ctx, 1, models.GoalRequest{TargetRole: "Data Scientist"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save goal")
	})
}

func TestOnboardingService_SaveSkills(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProfiles := newTestOnboardingSvc(t, ctrl)
	ctx := context.Background()

	t.Run("skills are forwarded", func(t *testing.T) {
		mockProfiles.EXPECT().SaveSkills(ctx, int64(1), []string{"Go", "SQL"}).Return(nil)

		require.NoError(t, svc.SaveSkills(ctx, 1, models.SkillsRequest{Skills: []string{"Go", "SQL"}}))
	})

	t.Run("nil list is saved as empty", func(t *testing.T) {
		mockProfiles.EXPECT().SaveSkills(ctx, int64(1), []string{}).Return(nil)

		require.NoError(t, svc.SaveSkills(ctx, 1, models.SkillsRequest{}))
	})
}

func TestOnboardingService_SavePreferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProfiles := newTestOnboardingSvc(t, ctrl)
	ctx := context.Background()

	t.Run("valid preferences", func(t *testing.T) {
		req := models.PreferencesRequest{LearningPace: "moderate", DailyHours: 2}
		mockProfiles.EXPECT().SavePreferences(ctx, int64(1), req).Return(nil)

		require.NoError(t, svc.SavePreferences(ctx, 1, req))
	})

	t.Run("negative hours are rejected", func(t *testing.T) {
		err := svc.SavePreferences(ctx, 1, models.PreferencesRequest{DailyHours: -1})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestOnboardingService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProfiles := newTestOnboardingSvc(t, ctrl)
	ctx := context.Background()

	t.Run("complete profile", func(t *testing.T) {
		profile := models.Profile{
			UserID:       1,
			Goal:         "Become a Backend Developer",
			TargetRole:   "Backend Developer",
			Skills:       []string{"Go"},
			LearningPace: "moderate",
			DailyHours:   2,
		}
		mockProfiles.EXPECT().GetProfile(ctx, int64(1)).Return(profile, nil)

		status, err := svc.Status(ctx, 1)
		require.NoError(t, err)
		assert.True(t, status.Completed)
	})

	t.Run("partial profile", func(t *testing.T) {
		profile := models.Profile{UserID: 1, TargetRole: "Backend Developer"}
		mockProfiles.EXPECT().GetProfile(ctx, int64(1)).Return(profile, nil)

		status, err := svc.Status(ctx, 1)
		require.NoError(t, err)
		assert.True(t, status.Status.Goal)
		assert.False(t, status.Status.Skills)
		assert.False(t, status.Completed)
	})

	t.Run("no profile row reports all incomplete", func(t *testing.T) {
		mockProfiles.EXPECT().GetProfile(ctx, int64(2)).Return(models.Profile{}, store.ErrNoProfileWasFound)

		status, err := svc.Status(ctx, 2)
		require.NoError(t, err)
		assert.False(t, status.Completed)
		assert.False(t, status.Status.Goal)
	})
}
