package terminal

import "github.com/charmbracelet/lipgloss"

const (
	ColorAccent = "#7D56F4"
	ColorMuted  = "#626262"
	ColorText   = "#FAFAFA"
)

// Styles contains all styles for the terminal host
type Styles struct {
	AppBar  lipgloss.Style
	Heading lipgloss.Style
	Text    lipgloss.Style
	Link    lipgloss.Style
	Cell    lipgloss.Style
	Focused lipgloss.Style
	Inert   lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the default styles
func DefaultStyles() Styles {
	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Width(3).
		Align(lipgloss.Center)

	return Styles{
		AppBar: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent)),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),
		Link: lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color(ColorAccent)),
		Cell: cell,
		Focused: cell.
			BorderForeground(lipgloss.Color(ColorAccent)).
			Bold(true),
		Inert: cell.
			Foreground(lipgloss.Color(ColorMuted)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)).
			MarginTop(1),
	}
}
