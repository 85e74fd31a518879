// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginModel is the sign-in form: email and password inputs plus a
// "remember me" toggle that selects the durable session tier.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	remember   bool
	submitting bool
}

func newLoginModel() loginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{emailInput, passwordInput}}
}

func (m loginModel) View(notice string) string {
	var b strings.Builder
	b.WriteString("Email    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	check := "[ ]"
	if m.remember {
		check = "[x]"
	}
	b.WriteString("Remember │ ")
	b.WriteString(check)
	b.WriteString(" stay signed in\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(notice))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ctrl+r: toggle remember │ enter: submit")
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.notice = ""
			m.login.submitting = false
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusNextLogin(m.login, -1)
			return m, nil
		case keyMsg.String() == "ctrl+r":
			m.login.remember = !m.login.remember
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.notice = "Email and password are required"
				return m, nil
			}

			m.notice = ""
			m.login.submitting = true
			return m, m.cmdSignIn(email, pass, m.login.remember)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func focusNextLogin(m loginModel, dir int) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + dir + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
