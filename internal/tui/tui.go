package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive storefront and blocks until the user quits.
func Run(deps Deps) error {
	program := tea.NewProgram(New(deps), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("ui failed: %w", err)
	}
	return nil
}
