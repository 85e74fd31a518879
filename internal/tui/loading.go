package tui

import "github.com/charmbracelet/bubbles/spinner"

type loadingModel struct {
	spinner spinner.Model
	label   string
}

func newLoadingModel(label string) loadingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return loadingModel{spinner: s, label: label}
}

func (m loadingModel) View() string {
	return m.spinner.View() + " " + m.label
}
