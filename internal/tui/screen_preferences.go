package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pathforge/pathforge/internal/service"
	"github.com/pathforge/pathforge/models"
)

type prefsFocus int

const (
	prefsFocusExperience prefsFocus = iota
	prefsFocusPace
	prefsFocusHours
	prefsFocusContent
)

var (
	experienceLevels = []string{"beginner", "intermediate", "advanced"}
	learningPaces    = []string{"relaxed", "moderate", "intensive"}
	contentTypes     = []string{"videos", "articles", "interactive"}
)

// preferencesModel is the last wizard step: experience level, learning pace,
// daily hours, and preferred content types.
type preferencesModel struct {
	focus prefsFocus

	experienceIdx int
	paceIdx       int
	hours         textinput.Model
	contentIdx    int
	content       map[string]bool
}

func newPreferencesModel() preferencesModel {
	hours := textinput.New()
	hours.Placeholder = "2"
	hours.CharLimit = 2
	hours.Width = 4

	return preferencesModel{
		paceIdx: 1,
		hours:   hours,
		content: map[string]bool{},
	}
}

// load restores previously entered preferences, e.g. from a resumed draft or
// when navigating back to this step.
func (m *preferencesModel) load(prefs models.Preferences) {
	for i, level := range experienceLevels {
		if level == prefs.ExperienceLevel {
			m.experienceIdx = i
		}
	}
	for i, pace := range learningPaces {
		if pace == prefs.LearningPace {
			m.paceIdx = i
		}
	}
	if prefs.DailyHours > 0 {
		m.hours.SetValue(strconv.Itoa(prefs.DailyHours))
	}
	for _, c := range prefs.PreferredContent {
		m.content[c] = true
	}
}

func (m preferencesModel) preferences() (models.Preferences, bool) {
	hours := 2
	if raw := strings.TrimSpace(m.hours.Value()); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 16 {
			return models.Preferences{}, false
		}
		hours = parsed
	}

	var content []string
	for _, c := range contentTypes {
		if m.content[c] {
			content = append(content, c)
		}
	}

	return models.Preferences{
		ExperienceLevel:  experienceLevels[m.experienceIdx],
		LearningPace:     learningPaces[m.paceIdx],
		DailyHours:       hours,
		PreferredContent: content,
	}, true
}

func (m preferencesModel) View(wizard service.WizardState, notice string) string {
	var b strings.Builder
	b.WriteString(renderProgressBar(wizard.Step.Progress()))
	b.WriteString("\n\nHow do you want to learn?\n\n")

	b.WriteString(renderSelector("Experience", experienceLevels, m.experienceIdx, m.focus == prefsFocusExperience))
	b.WriteString(renderSelector("Pace      ", learningPaces, m.paceIdx, m.focus == prefsFocusPace))

	cursor := "  "
	if m.focus == prefsFocusHours {
		cursor = "> "
	}
	b.WriteString(cursor + "Hours/day  │ [" + m.hours.View() + "]\n")

	b.WriteString("\nContent types:\n")
	for i, c := range contentTypes {
		cursor := "  "
		if m.focus == prefsFocusContent && i == m.contentIdx {
			cursor = "> "
		}
		check := "[ ]"
		if m.content[c] {
			check = "[x]"
		}
		b.WriteString(cursor + check + " " + c + "\n")
	}

	if notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(notice))
		b.WriteString("\n")
	}

	return renderPage("STEP 3 OF 3 · PREFERENCES", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ←/→: change │ space: toggle │ enter: generate path")
}

func renderSelector(label string, options []string, idx int, focused bool) string {
	cursor := "  "
	if focused {
		cursor = "> "
	}

	var rendered []string
	for i, o := range options {
		if i == idx {
			rendered = append(rendered, selectedStyle.Render("("+o+")"))
		} else {
			rendered = append(rendered, " "+o+" ")
		}
	}

	return cursor + label + " │ " + strings.Join(rendered, " ") + "\n"
}

func (m appModel) updatePreferences(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.notice = ""
		next, effects := m.wizard.Back()
		cmd := m.applyEffects(next, effects)
		m.skills = newSkillsModel()
		m.skills.suggestions = service.SuggestionsForRole(m.wizard.Role)
		m.currentScreen = screenSkills
		return m, cmd

	case key.Matches(keyMsg, keys.tab):
		m.preferences = m.preferences.focusNext(1)
		return m, nil

	case key.Matches(keyMsg, keys.backtab):
		m.preferences = m.preferences.focusNext(-1)
		return m, nil

	case key.Matches(keyMsg, keys.left):
		m.preferences = m.preferences.shift(-1)
		return m, nil

	case key.Matches(keyMsg, keys.right):
		m.preferences = m.preferences.shift(1)
		return m, nil

	case key.Matches(keyMsg, keys.up):
		if m.preferences.focus == prefsFocusContent && m.preferences.contentIdx > 0 {
			m.preferences.contentIdx--
		}
		return m, nil

	case key.Matches(keyMsg, keys.down):
		if m.preferences.focus == prefsFocusContent && m.preferences.contentIdx < len(contentTypes)-1 {
			m.preferences.contentIdx++
		}
		return m, nil

	case key.Matches(keyMsg, keys.space):
		if m.preferences.focus == prefsFocusContent {
			c := contentTypes[m.preferences.contentIdx]
			m.preferences.content[c] = !m.preferences.content[c]
		}
		return m, nil

	case key.Matches(keyMsg, keys.enter):
		prefs, ok := m.preferences.preferences()
		if !ok {
			m.notice = "Daily hours must be a number between 1 and 16"
			return m, nil
		}

		next, effects := m.wizard.SetPreferences(prefs)
		saveCmd := m.applyEffects(next, effects)

		next, effects = m.wizard.Generate()
		submitCmd := m.applyEffects(next, effects)
		return m, tea.Batch(saveCmd, submitCmd)
	}

	if m.preferences.focus == prefsFocusHours {
		var cmd tea.Cmd
		m.preferences.hours, cmd = m.preferences.hours.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m preferencesModel) focusNext(dir int) preferencesModel {
	if m.focus == prefsFocusHours {
		m.hours.Blur()
	}

	m.focus = prefsFocus((int(m.focus) + dir + 4) % 4)

	if m.focus == prefsFocusHours {
		m.hours.Focus()
	}
	return m
}

func (m preferencesModel) shift(dir int) preferencesModel {
	switch m.focus {
	case prefsFocusExperience:
		m.experienceIdx = clampIndex(m.experienceIdx+dir, len(experienceLevels))
	case prefsFocusPace:
		m.paceIdx = clampIndex(m.paceIdx+dir, len(learningPaces))
	}
	return m
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
