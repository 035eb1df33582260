package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunBuilderTUI starts the interactive gradient editor and returns what it
// was showing when the user quit
func RunBuilderTUI(opts Options) (Result, error) {
	model := NewBuilderModel(opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(BuilderModel)
	if !ok {
		return Result{}, fmt.Errorf("unexpected editor model %T", finalModel)
	}
	return m.Result(), nil
}
