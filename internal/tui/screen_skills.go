// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pathforge/pathforge/internal/service"
	"github.com/pathforge/pathforge/models"
)

type skillsFocus int

const (
	skillsFocusInput skillsFocus = iota
	skillsFocusSuggestions
	skillsFocusAdded
)

// skillsModel is the second wizard step: a free-text skill input, quick-add
// suggestions for the selected role, and the list of already added skills.
type skillsModel struct {
	input       textinput.Model
	suggestions []string
	focus       skillsFocus
	sugIdx      int
	addedIdx    int
}

func newSkillsModel() skillsModel {
	input := textinput.New()
	input.Placeholder = "type a skill and press enter"
	input.CharLimit = 60
	input.Width = 40
	input.Focus()

	return skillsModel{input: input}
}

func (m skillsModel) View(wizard service.WizardState, notice string) string {
	var b strings.Builder
	b.WriteString(renderProgressBar(wizard.Step.Progress()))
	b.WriteString(fmt.Sprintf("\n\nWhat do you already know? (%d/%d)\n\n", len(wizard.Skills), models.MaxSkills))

	b.WriteString("Skill │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")

	if len(m.suggestions) > 0 {
		b.WriteString("Suggestions for " + wizard.Role + ":\n")
		for i, s := range m.suggestions {
			cursor := "  "
			if m.focus == skillsFocusSuggestions && i == m.sugIdx {
				cursor = "> "
			}
			b.WriteString(cursor + s + "\n")
		}
		b.WriteString("\n")
	}

	if len(wizard.Skills) > 0 {
		b.WriteString("Added:\n")
		for i, s := range wizard.Skills {
			cursor := "  "
			if m.focus == skillsFocusAdded && i == m.addedIdx {
				cursor = "> "
			}
			b.WriteString(cursor + "• " + s + "\n")
		}
	}

	if notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(notice))
		b.WriteString("\n")
	}

	hotKeys := "esc: back │ tab: switch section │ enter: add / continue"
	if m.focus != skillsFocusInput {
		hotKeys = "esc: back │ tab: switch section │ enter: add │ d: remove │ s: skip step"
	}

	return renderPage("STEP 2 OF 3 · SKILLS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m appModel) updateSkills(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.notice = ""
		next, effects := m.wizard.Back()
		cmd := m.applyEffects(next, effects)
		m.career = newCareerModel()
		m.career.selectRole(m.wizard.Role)
		m.currentScreen = screenCareer
		return m, cmd

	case key.Matches(keyMsg, keys.tab):
		m.skills = m.skills.focusNext(len(m.wizard.Skills))
		return m, nil

	case key.Matches(keyMsg, keys.enter):
		switch m.skills.focus {
		case skillsFocusInput:
			typed := m.skills.input.Value()
			if strings.TrimSpace(typed) == "" {
				return m.advanceFromSkills()
			}
			next, effects := m.wizard.AddSkill(typed)
			cmd := m.applyEffects(next, effects)
			if effects.SaveDraft {
				m.skills.input.SetValue("")
			}
			return m, cmd
		case skillsFocusSuggestions:
			next, effects := m.wizard.AddSkill(m.skills.suggestions[m.skills.sugIdx])
			return m, m.applyEffects(next, effects)
		case skillsFocusAdded:
			return m.advanceFromSkills()
		}
	}

	if m.skills.focus != skillsFocusInput {
		switch {
		case key.Matches(keyMsg, keys.up):
			m.skills = m.skills.moveCursor(-1, len(m.wizard.Skills))
			return m, nil
		case key.Matches(keyMsg, keys.down):
			m.skills = m.skills.moveCursor(1, len(m.wizard.Skills))
			return m, nil
		case key.Matches(keyMsg, keys.skip):
			m.notice = ""
			next, effects := m.wizard.Skip()
			cmd := m.applyEffects(next, effects)
			m.currentScreen = screenPreferences
			m.preferences = newPreferencesModel()
			m.preferences.load(m.wizard.Prefs)
			return m, cmd
		case key.Matches(keyMsg, keys.remove):
			if m.skills.focus == skillsFocusAdded {
				next, effects := m.wizard.RemoveSkill(m.skills.addedIdx)
				cmd := m.applyEffects(next, effects)
				if m.skills.addedIdx >= len(m.wizard.Skills) && m.skills.addedIdx > 0 {
					m.skills.addedIdx--
				}
				return m, cmd
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.skills.input, cmd = m.skills.input.Update(msg)
	return m, cmd
}

func (m appModel) advanceFromSkills() (tea.Model, tea.Cmd) {
	next, effects := m.wizard.Next()
	cmd := m.applyEffects(next, effects)
	if m.wizard.Step == service.StepPreferences {
		m.currentScreen = screenPreferences
		m.preferences = newPreferencesModel()
		m.preferences.load(m.wizard.Prefs)
	}
	return m, cmd
}

func (m skillsModel) focusNext(addedCount int) skillsModel {
	switch m.focus {
	case skillsFocusInput:
		if len(m.suggestions) > 0 {
			m.input.Blur()
			m.focus = skillsFocusSuggestions
		} else if addedCount > 0 {
			m.input.Blur()
			m.focus = skillsFocusAdded
		}
	case skillsFocusSuggestions:
		if addedCount > 0 {
			m.focus = skillsFocusAdded
		} else {
			m.focus = skillsFocusInput
			m.input.Focus()
		}
	case skillsFocusAdded:
		m.focus = skillsFocusInput
		m.input.Focus()
	}
	return m
}

func (m skillsModel) moveCursor(dir, addedCount int) skillsModel {
	switch m.focus {
	case skillsFocusSuggestions:
		m.sugIdx += dir
		if m.sugIdx < 0 {
			m.sugIdx = 0
		}
		if m.sugIdx >= len(m.suggestions) {
			m.sugIdx = len(m.suggestions) - 1
		}
	case skillsFocusAdded:
		m.addedIdx += dir
		if m.addedIdx < 0 {
			m.addedIdx = 0
		}
		if m.addedIdx >= addedCount {
			m.addedIdx = addedCount - 1
		}
	}
	return m
}
