package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathforge/pathforge/internal/config"
	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/models"
)

// newTestAdapter starts an httptest server with the given handler and wires
// an adapter to it.
func newTestAdapter(t *testing.T, handler http.Handler) (ServerAdapter, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.NewClientLogger("test"))
	require.NoError(t, err)

	return a, srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ---------------------------------------------------------------------------
// TestNormalizeBaseURL
// ---------------------------------------------------------------------------

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain host gets http scheme", "localhost:8080", "http://localhost:8080", false},
		{"existing scheme kept", "https://api.example.com", "https://api.example.com", false},
		{"trailing slash trimmed", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// ---------------------------------------------------------------------------
// TestRegister / TestLogin
// ---------------------------------------------------------------------------

func TestRegister_StoresBearerToken(t *testing.T) {
	var gotReq models.RegisterRequest

	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Authorization", "Bearer issued-token")
		writeJSON(t, w, http.StatusCreated, models.AuthResponse{
			Message: "account created",
			User:    models.UserSummary{ID: 1, Name: "Alice", Email: "alice@example.com"},
		})
	}))

	user, err := a.Register(context.Background(), models.RegisterRequest{
		Username: "Alice",
		Email:    "alice@example.com",
		Password: "Str0ngpass",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice@example.com", gotReq.Email)
	assert.Equal(t, "issued-token", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "this email is already registered", http.StatusConflict)
	}))

	_, err := a.Register(context.Background(), models.RegisterRequest{})
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "this email is already registered")
}

func TestLogin_Unauthorized(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid email/password", http.StatusUnauthorized)
	}))

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.co", Password: "x"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token(), "failed login must not set a token")
}

// ---------------------------------------------------------------------------
// TestAuthorizedRequests
// ---------------------------------------------------------------------------

func TestOnboardingWrites_CarryBearerToken(t *testing.T) {
	var authHeaders []string

	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "saved"})
	}))

	a.SetToken("jwt-token")
	ctx := context.Background()

	require.NoError(t, a.SaveGoal(ctx, models.GoalRequest{TargetRole: "Backend Developer"}))
	require.NoError(t, a.SaveSkills(ctx, models.SkillsRequest{Skills: []string{"Go"}}))
	require.NoError(t, a.SavePreferences(ctx, models.PreferencesRequest{DailyHours: 2}))
	require.NoError(t, a.GeneratePath(ctx))

	require.Len(t, authHeaders, 4)
	for _, h := range authHeaders {
		assert.Equal(t, "Bearer jwt-token", h)
	}
}

func TestOnboardingStatus(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/onboarding/status", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.StatusResponse{
			Status:    models.OnboardingStatus{Goal: true},
			Completed: false,
		})
	}))

	status, err := a.OnboardingStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Status.Goal)
	assert.False(t, status.Completed)
}

// ---------------------------------------------------------------------------
// TestGetPath
// ---------------------------------------------------------------------------

func TestGetPath_Success(t *testing.T) {
	path := models.LearningPath{
		Title:      "Backend Developer Path",
		TargetRole: "Backend Developer",
		Curriculum: models.Curriculum{
			Modules: []models.Module{{Title: "HTTP Services"}},
		},
	}

	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/ai/path", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.PathResponse{Path: path})
	}))

	got, err := a.GetPath(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer Path", got.Title)
}

func TestGetPath_NotFound(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no learning path has been generated yet", http.StatusNotFound)
	}))

	_, err := a.GetPath(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetPath_SchemaMismatch(t *testing.T) {
	t.Run("missing modules", func(t *testing.T) {
		a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, models.PathResponse{
				Path: models.LearningPath{Title: "Path without modules"},
			})
		}))

		_, err := a.GetPath(context.Background())
		require.ErrorIs(t, err, ErrSchema)
	})

	t.Run("not json", func(t *testing.T) {
		a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>gateway error</html>"))
		}))

		_, err := a.GetPath(context.Background())
		require.ErrorIs(t, err, ErrSchema)
	})
}

// ---------------------------------------------------------------------------
// TestMapHTTPError
// ---------------------------------------------------------------------------

func TestMapHTTPError_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tc := range tests {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", tc.status)
			}))

			err := a.GeneratePath(context.Background())
			require.ErrorIs(t, err, tc.want)
		})
	}
}
