package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pathforge/pathforge/internal/adapter"
	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/mock"
	"github.com/pathforge/pathforge/models"
)

func newTestSubmitter(t *testing.T, ctrl *gomock.Controller) (OnboardingSubmitter, *mock.MockServerAdapter, *mock.MockDraftService) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockDrafts := mock.NewMockDraftService(ctrl)
	svc := NewOnboardingSubmitter(mockAdapter, mockDrafts, logger.NewClientLogger("test"))
	return svc, mockAdapter, mockDrafts
}

func completedDraft() models.Draft {
	return models.Draft{
		Role:   "Backend Developer",
		Skills: []string{"Go", "SQL"},
		Preferences: models.Preferences{
			ExperienceLevel:  "intermediate",
			LearningPace:     "moderate",
			DailyHours:       2,
			PreferredContent: []string{"articles"},
		},
	}
}

func TestOnboardingSubmitter_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockDrafts := newTestSubmitter(t, ctrl)
	ctx := context.Background()
	draft := completedDraft()

	gomock.InOrder(
		mockAdapter.EXPECT().SaveGoal(ctx, models.GoalRequest{
			Goal:       "Become a Backend Developer",
			TargetRole: "Backend Developer",
		}).Return(nil),
		mockAdapter.EXPECT().SaveSkills(ctx, models.SkillsRequest{Skills: draft.Skills}).Return(nil),
		mockAdapter.EXPECT().SavePreferences(ctx, models.PreferencesRequest{
			LearningPace:     "moderate",
			DailyHours:       2,
			PreferredContent: []string{"articles"},
		}).Return(nil),
		mockAdapter.EXPECT().GeneratePath(ctx).Return(nil),
		mockDrafts.EXPECT().Clear(ctx).Return(nil),
	)

	require.NoError(t, svc.Submit(ctx, draft))
}

func TestOnboardingSubmitter_Submit_RequiresRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSubmitter(t, ctrl)

	err := svc.Submit(context.Background(), models.Draft{Skills: []string{"Go"}})
	require.ErrorIs(t, err, ErrRoleRequired)
}

func TestOnboardingSubmitter_Submit_GoalFailureAbortsSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSubmitter(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SaveGoal(ctx, gomock.Any()).Return(adapter.ErrUnauthorized)

	err := svc.Submit(ctx, completedDraft())
	require.ErrorIs(t, err, ErrSubmissionFailed)
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestOnboardingSubmitter_Submit_GenerateFailureKeepsDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSubmitter(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().SaveGoal(ctx, gomock.Any()).Return(nil),
		mockAdapter.EXPECT().SaveSkills(ctx, gomock.Any()).Return(nil),
		mockAdapter.EXPECT().SavePreferences(ctx, gomock.Any()).Return(nil),
		mockAdapter.EXPECT().GeneratePath(ctx).Return(adapter.ErrInternalServerError),
	)

	err := svc.Submit(ctx, completedDraft())
	require.ErrorIs(t, err, ErrGenerationFailed)
}

func TestOnboardingSubmitter_Submit_DraftClearFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockDrafts := newTestSubmitter(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SaveGoal(ctx, gomock.Any()).Return(nil)
	mockAdapter.EXPECT().SaveSkills(ctx, gomock.Any()).Return(nil)
	mockAdapter.EXPECT().SavePreferences(ctx, gomock.Any()).Return(nil)
	mockAdapter.EXPECT().GeneratePath(ctx).Return(nil)
	mockDrafts.EXPECT().Clear(ctx).Return(errors.New("disk full"))

	require.NoError(t, svc.Submit(ctx, completedDraft()))
}

func TestOnboardingSubmitter_FetchPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSubmitter(t, ctrl)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		path := models.LearningPath{Title: "Backend Developer Path"}
		mockAdapter.EXPECT().GetPath(ctx).Return(path, nil)

		got, err := svc.FetchPath(ctx)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("transport error is mapped", func(t *testing.T) {
		mockAdapter.EXPECT().GetPath(ctx).Return(models.LearningPath{}, adapter.ErrUnauthorized)

		_, err := svc.FetchPath(ctx)
		require.ErrorIs(t, err, ErrNotAuthenticated)
	})
}
