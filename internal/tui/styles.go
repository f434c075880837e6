package tui

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles used by the UI.
type Styles struct {
	Header     lipgloss.Style
	Title      lipgloss.Style
	Badge      lipgloss.Style
	Status     lipgloss.Style
	ErrMsg     lipgloss.Style
	Footer     lipgloss.Style
	LocalMark  lipgloss.Style
	Selected   lipgloss.Style
	Drawer     lipgloss.Style
	DrawerLine lipgloss.Style
	FormLabel  lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Header:     lipgloss.NewStyle().Padding(0, 1),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Badge:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("63")).Padding(0, 1),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ErrMsg:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Footer:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		LocalMark:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		Drawer:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		DrawerLine: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FormLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
