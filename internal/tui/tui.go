package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/service"
	"github.com/pathforge/pathforge/models"
)

type TUI struct {
	services *service.ClientServices
	tracker  *DraftTracker
}

func New(services *service.ClientServices, tracker *DraftTracker, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, tracker: tracker}, nil
}

// LoginFlow runs the welcome, sign-in, and sign-up screens until the user is
// authenticated. It returns [ErrUserQuit] when the user exits the program
// instead of signing in.
func (t *TUI) LoginFlow(ctx context.Context) (models.UserSummary, error) {
	model := newLoginAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.UserSummary{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.UserSummary{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.UserSummary{}, result.err
	}

	return result.user, nil
}

// MainLoop runs the onboarding wizard and path screens for an authenticated
// user. It reports logout=true when the user chose to sign out rather than
// quit.
func (t *TUI) MainLoop(ctx context.Context, user models.UserSummary) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services, t.tracker, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

// DraftTracker mirrors the wizard's latest draft snapshot behind a mutex so
// the autosave job can read it from its own goroutine. It implements
// [service.DraftSource].
type DraftTracker struct {
	mu    sync.Mutex
	draft models.Draft
	ok    bool
}

func NewDraftTracker() *DraftTracker {
	return &DraftTracker{}
}

// Update records the latest wizard snapshot.
func (t *DraftTracker) Update(draft models.Draft) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.draft = draft
	t.ok = true
}

// Reset marks the tracker empty, e.g. after a successful submit.
func (t *DraftTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.draft = models.Draft{}
	t.ok = false
}

// Snapshot implements [service.DraftSource].
func (t *DraftTracker) Snapshot() (models.Draft, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.draft, t.ok
}
