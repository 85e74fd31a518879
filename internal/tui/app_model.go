// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pathforge/pathforge/internal/service"
	"github.com/pathforge/pathforge/internal/store"
	"github.com/pathforge/pathforge/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenLoading
	screenResume
	screenCareer
	screenSkills
	screenPreferences
	screenGenerating
	screenPath
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	tracker  *DraftTracker
	mode     appMode

	currentScreen screen

	welcome     welcomeModel
	login       loginModel
	register    registerModel
	loading     loadingModel
	resume      resumeModel
	career      careerModel
	skills      skillsModel
	preferences preferencesModel
	path        pathModel

	wizard service.WizardState

	user   models.UserSummary
	err    error
	logout bool

	notice string
	status string
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, tracker *DraftTracker, user models.UserSummary) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		tracker:       tracker,
		mode:          modeMain,
		currentScreen: screenLoading,
		loading:       newLoadingModel("Loading your data..."),
		career:        newCareerModel(),
		skills:        newSkillsModel(),
		preferences:   newPreferencesModel(),
		wizard:        service.NewWizardState(),
		user:          user,
	}
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.loading.spinner.Tick, m.cmdLoadInitial())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) && m.typingScreen() {
			// "q" must stay typeable inside text inputs.
			if msg.String() == "ctrl+c" {
				m.err = ErrUserQuit
				return m, tea.Quit
			}
			break
		}
		if key.Matches(msg, keys.quit) {
			if m.mode == modeLogin {
				m.err = ErrUserQuit
			}
			return m, tea.Quit
		}

	case authDoneMsg:
		m.user = msg.user
		return m, tea.Quit

	case authFailedMsg:
		m.setSubmitting(false)
		m.notice = humanizeAuthError(msg.err)
		return m, nil

	case initialStateMsg:
		switch {
		case msg.hasPath:
			m.path = newPathModel(msg.path)
			m.currentScreen = screenPath
		case msg.hasDraft:
			m.resume = newResumeModel(msg.draft)
			m.currentScreen = screenResume
		default:
			m.currentScreen = screenCareer
		}
		return m, nil

	case draftDiscardedMsg:
		return m, nil

	case submitDoneMsg:
		if msg.err != nil {
			m.currentScreen = screenPreferences
			m.notice = humanizeSubmitError(msg.err)
			return m, nil
		}
		m.tracker.Reset()
		return m, m.cmdFetchPath()

	case pathLoadedMsg:
		if msg.err != nil {
			m.currentScreen = screenPreferences
			m.notice = humanizeSubmitError(msg.err)
			return m, nil
		}
		m.path = newPathModel(msg.path)
		m.currentScreen = screenPath
		return m, nil

	case copiedMsg:
		if msg.err == nil {
			m.status = "Copied!"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		switch m.currentScreen {
		case screenLoading:
			m.loading.spinner, cmd = m.loading.spinner.Update(msg)
		case screenGenerating:
			m.loading.spinner, cmd = m.loading.spinner.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenResume:
		return m.updateResume(msg)
	case screenCareer:
		return m.updateCareer(msg)
	case screenSkills:
		return m.updateSkills(msg)
	case screenPreferences:
		return m.updatePreferences(msg)
	case screenPath:
		return m.updatePath(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View(m.notice)
	case screenRegister:
		body = m.register.View(m.notice)
	case screenLoading, screenGenerating:
		body = m.loading.View()
	case screenResume:
		body = m.resume.View()
	case screenCareer:
		body = m.career.View(m.wizard, m.notice)
	case screenSkills:
		body = m.skills.View(m.wizard, m.notice)
	case screenPreferences:
		body = m.preferences.View(m.wizard, m.notice)
	case screenPath:
		body = m.path.View(m.status)
	}

	return appStyle.Render(body)
}

// typingScreen reports whether the active screen hosts a focused text input,
// in which case plain letters must not trigger hotkeys.
func (m appModel) typingScreen() bool {
	switch m.currentScreen {
	case screenLogin, screenRegister:
		return true
	case screenSkills:
		return m.skills.focus == skillsFocusInput
	case screenPreferences:
		return m.preferences.focus == prefsFocusHours
	}
	return false
}

// applyEffects carries out the side effects a wizard transition requested:
// inline notices, tracker updates, draft saves, and the final submission.
func (m *appModel) applyEffects(next service.WizardState, effects service.Effects) tea.Cmd {
	m.wizard = next
	m.notice = effects.Notice

	var cmds []tea.Cmd
	if effects.SaveDraft {
		draft := next.Draft()
		m.tracker.Update(draft)
		cmds = append(cmds, m.cmdSaveDraft(draft))
	}
	if effects.Submit {
		m.currentScreen = screenGenerating
		m.loading = newLoadingModel("Generating your learning path...")
		cmds = append(cmds, m.loading.spinner.Tick, m.cmdSubmit(next.Draft()))
	}

	return tea.Batch(cmds...)
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
}

func (m appModel) cmdSignIn(email, password string, remember bool) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.SignIn(ctx, email, password, remember)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{user: user}
	}
}

func (m appModel) cmdSignUp(name, email, password, confirm string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.SignUp(ctx, name, email, password, confirm)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{user: user}
	}
}

func (m appModel) cmdLoadInitial() tea.Cmd {
	ctx := m.ctx
	submitter := m.services.Submitter
	drafts := m.services.Drafts
	return func() tea.Msg {
		if path, err := submitter.FetchPath(ctx); err == nil {
			return initialStateMsg{path: path, hasPath: true}
		}
		if draft, err := drafts.Load(ctx); err == nil {
			return initialStateMsg{draft: draft, hasDraft: true}
		}
		return initialStateMsg{}
	}
}

func (m appModel) cmdSaveDraft(draft models.Draft) tea.Cmd {
	ctx := m.ctx
	drafts := m.services.Drafts
	return func() tea.Msg {
		_ = drafts.Save(ctx, draft)
		return nil
	}
}

func (m appModel) cmdDiscardDraft() tea.Cmd {
	ctx := m.ctx
	drafts := m.services.Drafts
	return func() tea.Msg {
		_ = drafts.Clear(ctx)
		return draftDiscardedMsg{}
	}
}

func (m appModel) cmdSubmit(draft models.Draft) tea.Cmd {
	ctx := m.ctx
	submitter := m.services.Submitter
	return func() tea.Msg {
		return submitDoneMsg{err: submitter.Submit(ctx, draft)}
	}
}

func (m appModel) cmdFetchPath() tea.Cmd {
	ctx := m.ctx
	submitter := m.services.Submitter
	return func() tea.Msg {
		path, err := submitter.FetchPath(ctx)
		return pathLoadedMsg{path: path, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func humanizeAuthError(err error) string {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return "That email is already registered"
	case errors.Is(err, service.ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, store.ErrNoUserWasFound):
		return "No account found for that email"
	case errors.Is(err, service.ErrWrongPassword):
		return "Invalid email or password"
	default:
		return err.Error()
	}
}

func humanizeSubmitError(err error) string {
	switch {
	case errors.Is(err, service.ErrGenerationFailed):
		return "Path generation failed, please try again"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Your session has expired, please sign in again"
	case errors.Is(err, service.ErrSubmissionFailed):
		return "Could not reach the server, your answers are saved locally"
	default:
		return err.Error()
	}
}
