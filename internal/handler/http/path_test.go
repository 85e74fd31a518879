package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pathforge/pathforge/internal/app"
	"github.com/pathforge/pathforge/internal/store"
	"github.com/pathforge/pathforge/models"
)

func samplePath() models.LearningPath {
	return models.LearningPath{
		ID:                     3,
		Title:                  "Backend Developer Path (Backend Developer)",
		TargetRole:             "Backend Developer",
		EstimatedDurationWeeks: 6,
		DifficultyLevel:        "intermediate",
		Curriculum: models.Curriculum{
			Modules: []models.Module{{Title: "HTTP Services"}},
		},
	}
}

func TestGeneratePath_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, mockPaths := newTestHandler(t, ctrl)
	mockPaths.EXPECT().Generate(gomock.Any(), int64(7)).Return(samplePath(), nil)

	rec := httptest.NewRecorder()
	h.generatePath(rec, authedRequest(http.MethodPost, "/api/ai/generate-path", "", 7))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PathResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, app.MsgPathGenerated, resp.Message)
	assert.Equal(t, "Backend Developer", resp.Path.TargetRole)
}

func TestGeneratePath_NoUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/ai/generate-path", nil)
	rec := httptest.NewRecorder()

	h.generatePath(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGeneratePath_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, mockPaths := newTestHandler(t, ctrl)
	mockPaths.EXPECT().Generate(gomock.Any(), int64(7)).
		Return(models.LearningPath{}, errors.New("db offline"))

	rec := httptest.NewRecorder()
	h.generatePath(rec, authedRequest(http.MethodPost, "/api/ai/generate-path", "", 7))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetPath_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, mockPaths := newTestHandler(t, ctrl)
	mockPaths.EXPECT().ActivePath(gomock.Any(), int64(7)).Return(samplePath(), nil)

	rec := httptest.NewRecorder()
	h.getPath(rec, authedRequest(http.MethodGet, "/api/ai/path", "", 7))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PathResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Message)
	assert.Equal(t, 1, len(resp.Path.Curriculum.Modules))
}

func TestGetPath_NotGenerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, mockPaths := newTestHandler(t, ctrl)
	mockPaths.EXPECT().ActivePath(gomock.Any(), int64(7)).
		Return(models.LearningPath{}, store.ErrNoPathWasFound)

	rec := httptest.NewRecorder()
	h.getPath(rec, authedRequest(http.MethodGet, "/api/ai/path", "", 7))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgNoPathGenerated)
}
