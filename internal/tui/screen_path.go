package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pathforge/pathforge/internal/service"
	"github.com/pathforge/pathforge/models"
)

const pathViewportLines = 18

// pathModel renders a generated learning path with simple line scrolling.
type pathModel struct {
	path   models.LearningPath
	offset int
}

func newPathModel(path models.LearningPath) pathModel {
	return pathModel{path: path}
}

func (m pathModel) View(status string) string {
	lines := pathLines(m.path)

	end := m.offset + pathViewportLines
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	b.WriteString(renderProgressBar(100))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines[m.offset:end], "\n"))

	if end < len(lines) {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("... %d more lines", len(lines)-end)))
	}

	if status != "" {
		b.WriteString("\n\n")
		b.WriteString(noticeStyle.Render(status))
	}

	return renderPage("YOUR LEARNING PATH", b.String(),
		"↑/↓: scroll │ c: copy │ r: start over │ L: sign out │ q: quit")
}

func pathLines(path models.LearningPath) []string {
	var lines []string

	lines = append(lines, titleStyle.Render(path.Title))
	if path.Description != "" {
		lines = append(lines, fitText(path.Description, 70))
	}
	lines = append(lines, fmt.Sprintf("%d weeks · %s · %d topics",
		path.EstimatedDurationWeeks, path.DifficultyLevel, path.TotalTopics()))
	lines = append(lines, "")

	for i, module := range path.Curriculum.Modules {
		lines = append(lines, fmt.Sprintf("%d. %s (%.0fh, %s)",
			i+1, module.Title, module.EstimatedHours, module.Difficulty))
		for _, topic := range module.Topics {
			lines = append(lines, fmt.Sprintf("   • %s (%.0fh)", topic.Title, topic.EstimatedHours))
		}
		lines = append(lines, "")
	}

	return lines
}

// clipboardText is the plain-text rendition used by the copy hotkey.
func clipboardText(path models.LearningPath) string {
	var b strings.Builder
	b.WriteString(path.Title)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d weeks, %s\n\n", path.EstimatedDurationWeeks, path.DifficultyLevel))

	for i, module := range path.Curriculum.Modules {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, module.Title))
		for _, topic := range module.Topics {
			b.WriteString("   - " + topic.Title + "\n")
		}
	}

	return b.String()
}

func (m appModel) updatePath(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.path.offset > 0 {
			m.path.offset--
		}
	case key.Matches(keyMsg, keys.down):
		if m.path.offset < len(pathLines(m.path.path))-pathViewportLines {
			m.path.offset++
		}
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(clipboardText(m.path.path))
	case key.Matches(keyMsg, keys.restart):
		m.wizard = service.NewWizardState()
		m.tracker.Reset()
		m.notice = ""
		m.career = newCareerModel()
		m.currentScreen = screenCareer
		return m, nil
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}
