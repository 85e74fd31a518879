package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pathforge/pathforge/internal/service"
	"github.com/pathforge/pathforge/models"
)

// resumeModel is the confirmation prompt shown when a saved onboarding draft
// is found on startup.
type resumeModel struct {
	draft models.Draft
}

func newResumeModel(draft models.Draft) resumeModel {
	return resumeModel{draft: draft}
}

func (m resumeModel) View() string {
	var b strings.Builder
	b.WriteString("You have an unfinished setup from ")
	b.WriteString(m.draft.SavedAt.Format("Jan 2, 15:04"))
	b.WriteString(".\n\n")

	if m.draft.Role != "" {
		b.WriteString("Role:   " + m.draft.Role + "\n")
	}
	if len(m.draft.Skills) > 0 {
		b.WriteString(fmt.Sprintf("Skills: %s\n", fitText(strings.Join(m.draft.Skills, ", "), 50)))
	}

	b.WriteString("\nResume where you left off?")

	return renderPage("RESUME SETUP",
		overlayBoxStyle.Render(b.String()),
		"y: resume │ n: start over")
}

func (m appModel) updateResume(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes), key.Matches(keyMsg, keys.enter):
		m.wizard = m.wizard.ApplyDraft(m.resume.draft)
		m.tracker.Update(m.wizard.Draft())
		m.career = newCareerModel()
		m.career.selectRole(m.wizard.Role)
		m.currentScreen = screenCareer
		return m, nil
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.wizard = service.NewWizardState()
		m.currentScreen = screenCareer
		return m, m.cmdDiscardDraft()
	}

	return m, nil
}
