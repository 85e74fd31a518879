package service

import (
	"context"

	"github.com/pathforge/pathforge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService is the server-side account service: registration, credential
// verification, and JWT lifecycle.
type AuthService interface {
	// Register validates the payload, hashes the password with bcrypt, and
	// persists the account. Returns the created user or a wrapped storage
	// error (see store.ErrEmailAlreadyExists, store.ErrUsernameAlreadyExists).
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the credentials and stamps last_active. Returns
	// ErrWrongPassword on a mismatch or a wrapped storage error when the
	// account does not exist.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed JWT for the user.
	CreateToken(ctx context.Context, userID int64) (models.Token, error)

	// ParseToken validates a raw JWT string. Any validation failure is
	// normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// OnboardingService records the onboarding sections submitted by the wizard.
type OnboardingService interface {
	SaveGoal(ctx context.Context, userID int64, req models.GoalRequest) error
	SaveSkills(ctx context.Context, userID int64, req models.SkillsRequest) error
	SavePreferences(ctx context.Context, userID int64, req models.PreferencesRequest) error

	// Status reports which sections the user has completed so far.
	Status(ctx context.Context, userID int64) (models.StatusResponse, error)
}

// PathService generates and serves learning paths.
type PathService interface {
	// Generate builds a path from the user's onboarding profile, persists
	// it as the active path for the target role (deactivating any prior
	// one), and returns it. A missing profile falls back to default
	// onboarding values rather than failing.
	Generate(ctx context.Context, userID int64) (models.LearningPath, error)

	// ActivePath returns the user's current active path or
	// store.ErrNoPathWasFound.
	ActivePath(ctx context.Context, userID int64) (models.LearningPath, error)
}
