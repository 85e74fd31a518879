package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pathforge/pathforge/internal/service"
)

// careerModel is the first wizard step: a single-select list of career roles.
type careerModel struct {
	roles []string
	idx   int
}

func newCareerModel() careerModel {
	return careerModel{roles: service.Roles()}
}

// selectRole positions the cursor on role if present, e.g. when resuming a
// draft.
func (m *careerModel) selectRole(role string) {
	for i, r := range m.roles {
		if r == role {
			m.idx = i
			return
		}
	}
}

func (m careerModel) View(wizard service.WizardState, notice string) string {
	var b strings.Builder
	b.WriteString(renderProgressBar(wizard.Step.Progress()))
	b.WriteString("\n\nWhat role are you working towards?\n\n")

	for i, role := range m.roles {
		cursor := "  "
		label := role
		if i == m.idx {
			cursor = "> "
			label = selectedStyle.Render(role)
		}
		marker := "  "
		if role == wizard.Role {
			marker = "● "
		}
		b.WriteString(cursor + marker + label + "\n")
	}

	if notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(notice))
		b.WriteString("\n")
	}

	return renderPage("STEP 1 OF 3 · CAREER GOAL", strings.TrimRight(b.String(), "\n"),
		"enter: select and continue │ q: quit")
}

func (m appModel) updateCareer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.career.idx > 0 {
			m.career.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.career.idx < len(m.career.roles)-1 {
			m.career.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		next, effects := m.wizard.SelectRole(m.career.roles[m.career.idx])
		cmd := m.applyEffects(next, effects)

		next, effects = m.wizard.Next()
		advanceCmd := m.applyEffects(next, effects)
		if m.wizard.Step == service.StepSkills {
			m.skills = newSkillsModel()
			m.skills.suggestions = service.SuggestionsForRole(m.wizard.Role)
			m.currentScreen = screenSkills
		}
		return m, tea.Batch(cmd, advanceCmd)
	}

	return m, nil
}
