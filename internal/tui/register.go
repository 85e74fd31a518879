package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "min 8 chars, letters and digits"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	confirmInput := textinput.New()
	confirmInput.Placeholder = "repeat password"
	confirmInput.CharLimit = 256
	confirmInput.Width = 40
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{nameInput, emailInput, passwordInput, confirmInput}}
}

func (m registerModel) View(notice string) string {
	labels := []string{"Name    ", "Email   ", "Password", "Confirm "}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(notice))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: submit")
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.notice = ""
			m.register.submitting = false
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusNextRegister(m.register, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.register.inputs[0].Value())
			email := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			confirm := m.register.inputs[3].Value()
			if name == "" || email == "" || pass == "" {
				m.notice = "Name, email, and password are required"
				return m, nil
			}

			m.notice = ""
			m.register.submitting = true
			return m, m.cmdSignUp(name, email, pass, confirm)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func focusNextRegister(m registerModel, dir int) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + dir + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
