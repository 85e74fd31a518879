package service

import (
	"context"
	"time"

	"github.com/pathforge/pathforge/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService is the local authentication workflow. Accounts live in
// the local credential store with reversibly obfuscated passwords; this is a
// demonstration-grade store, not a security mechanism. On successful sign-up
// or sign-in the workflow additionally performs a best-effort credential
// exchange with the server to obtain a bearer token; server failures are
// swallowed and never affect the local outcome.
type ClientAuthService interface {
	// SignUp validates the input, rejects duplicate emails
	// (case-insensitive), appends the new user to the stored list, and opens
	// a durable session. Validation failures surface the validators package
	// sentinels; a taken email surfaces ErrEmailTaken.
	SignUp(ctx context.Context, name, email, password, confirm string) (models.UserSummary, error)

	// SignIn matches the stored normalized email exactly (case-sensitive)
	// and compares the deobfuscated password. Returns ErrUserNotFound when
	// no user matches and ErrWrongPassword on a password mismatch. On
	// success the session is stored in the tier selected by remember.
	SignIn(ctx context.Context, email, password string, remember bool) (models.UserSummary, error)

	// Logout clears the session in both tiers. It always succeeds.
	Logout(ctx context.Context) error

	// IsAuthenticated reports whether a session record exists in either
	// tier.
	IsAuthenticated(ctx context.Context) bool

	// RequireAuth returns (true, "") when authenticated. Otherwise it
	// returns false and the path the caller should navigate to, defaulting
	// to "/login" when redirect is empty.
	RequireAuth(ctx context.Context, redirect string) (bool, string)

	// CurrentUser returns the active session record, or
	// store.ErrLocalSessionNotFound when there is none.
	CurrentUser(ctx context.Context) (models.UserSummary, error)
}

// DraftService persists in-progress onboarding state so the wizard can be
// resumed after a restart.
type DraftService interface {
	// Save snapshots the draft to durable storage, stamping it with the
	// current time.
	Save(ctx context.Context, draft models.Draft) error

	// Load returns the stored draft. Absent, unparsable, or stale drafts
	// (older than the configured TTL) are reported as
	// store.ErrDraftNotFound; stale drafts are removed on the way out.
	Load(ctx context.Context) (models.Draft, error)

	// Clear removes the stored draft. Clearing an absent draft is a no-op.
	Clear(ctx context.Context) error
}

// DraftSource supplies the autosave job with the latest wizard snapshot.
// Implementations must be safe for concurrent use; the job calls Snapshot
// from its own goroutine. ok is false when there is nothing worth saving.
type DraftSource interface {
	Snapshot() (draft models.Draft, ok bool)
}

// AutosaveJob is a background worker that periodically saves the onboarding
// draft.
type AutosaveJob interface {
	// Start launches the background goroutine. It saves every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, source DraftSource, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// OnboardingSubmitter pushes the completed wizard state to the server and
// retrieves the generated path.
type OnboardingSubmitter interface {
	// Submit sends goal, skills, and preferences in sequence, then requests
	// path generation. The calls are strictly sequential; the first failure
	// aborts the rest and is returned wrapped in ErrSubmissionFailed or
	// ErrGenerationFailed. On full success the stored draft is discarded.
	Submit(ctx context.Context, draft models.Draft) error

	// FetchPath retrieves the active generated path from the server.
	FetchPath(ctx context.Context) (models.LearningPath, error)
}
