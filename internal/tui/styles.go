package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#2196F3")
	accent  = lipgloss.Color("#8BC34A")
	danger  = lipgloss.Color("#e53935")
	muted   = lipgloss.Color("#9e9e9e")
)

// Styles agrupa los estilos de la TUI y del CLI.
type Styles struct {
	Title      lipgloss.Style
	Tab        lipgloss.Style
	ActiveTab  lipgloss.Style
	Card       lipgloss.Style
	CardTitle  lipgloss.Style
	Label      lipgloss.Style
	EventOnly  lipgloss.Style
	Muted      lipgloss.Style
	Header     lipgloss.Style
	Cell       lipgloss.Style
	Separator  lipgloss.Style
	Reference  lipgloss.Style
	StatusLine lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		Tab:        lipgloss.NewStyle().Padding(0, 2),
		ActiveTab:  lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(primary),
		Card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1),
		CardTitle:  lipgloss.NewStyle().Bold(true),
		Label:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		EventOnly:  lipgloss.NewStyle().Bold(true).Foreground(danger),
		Muted:      lipgloss.NewStyle().Foreground(muted),
		Header:     lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:       lipgloss.NewStyle().Padding(0, 1),
		Separator:  lipgloss.NewStyle().Foreground(muted),
		Reference:  lipgloss.NewStyle().Italic(true).Foreground(primary),
		StatusLine: lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
