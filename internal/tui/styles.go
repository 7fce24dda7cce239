package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorError     = lipgloss.Color("#E74C3C")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")
)

var phaseColors = map[phase]lipgloss.Color{
	phaseSit:   colorPrimary,
	phaseStand: colorSuccess,
}

// Styles
var (
	// Frame
	borderStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	frameTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	frameHintStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMuted)

	// Clock
	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)
)

func phaseStyle(p phase) lipgloss.Style {
	return clockStyle.Foreground(phaseColors[p])
}
