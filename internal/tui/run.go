package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glimpse/glimpse/internal/types"
)

// Run opens the review screen and blocks until the user acknowledges or
// aborts. It reports whether the export should proceed.
func Run(findings []types.Finding) (bool, error) {
	final, err := tea.NewProgram(NewModel(findings), tea.WithAltScreen()).Run()
	if err != nil {
		return false, fmt.Errorf("error running TUI: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return false, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Accepted(), nil
}
