package store

import (
	"context"

	"github.com/pathforge/pathforge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the server-side users table access layer.
type UserRepository interface {
	// CreateUser persists a new user and returns it with the
	// server-assigned ID and CreatedAt. Password must already be hashed.
	CreateUser(ctx context.Context, user models.User, passwordHash string) (models.User, error)

	// FindUserByEmail looks a user up by exact email match and returns the
	// record together with its stored password hash.
	FindUserByEmail(ctx context.Context, email string) (models.User, string, error)

	// FindUserByID looks a user up by primary key.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateLastActive stamps the user's last_active column with now.
	UpdateLastActive(ctx context.Context, userID int64) error
}

// ProfileRepository stores per-user onboarding data. Writes are sectioned
// the way the onboarding endpoints are: goal, skills, preferences.
type ProfileRepository interface {
	SaveGoal(ctx context.Context, userID int64, goal models.GoalRequest) error
	SaveSkills(ctx context.Context, userID int64, skills []string) error
	SavePreferences(ctx context.Context, userID int64, prefs models.PreferencesRequest) error

	// GetProfile returns the user's onboarding profile or
	// ErrNoProfileWasFound when no section has been saved yet.
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
}

// PathRepository stores generated learning paths. A user has at most one
// active path per target role; saving a new one deactivates its
// predecessor.
type PathRepository interface {
	// SavePath inserts the generated path as the active one for
	// (userID, path.TargetRole), deactivating any prior active path for
	// the same role, and returns the stored record with its ID.
	SavePath(ctx context.Context, userID int64, path models.LearningPath) (models.LearningPath, error)

	// GetActivePath returns the most recently created active path of the
	// user or ErrNoPathWasFound.
	GetActivePath(ctx context.Context, userID int64) (models.LearningPath, error)
}
