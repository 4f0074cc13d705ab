package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // titles
	ColorHighlight = "205" // key names, borders
	ColorDanger    = "196" // errors
	ColorMuted     = "241" // hints, axis labels
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title       lipgloss.Style // axes titles
	FigureTitle lipgloss.Style // figure header
	Axes        lipgloss.Style // frame around line plots
	Label       lipgloss.Style // tick and colour bar labels
	Status      lipgloss.Style
	Error       lipgloss.Style
	Hint        lipgloss.Style
	HelpBox     lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	FigureTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Axes: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	HelpBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
}
