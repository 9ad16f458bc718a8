package main

import (
	"github.com/charmbracelet/lipgloss"

	"berlinClock/pkg/berlinClockCore"
)

// Color constants
const (
	ColorPrimary = lipgloss.Color("205") // Pink/magenta
	ColorRed     = lipgloss.Color("196")
	ColorYellow  = lipgloss.Color("220")
	ColorOff     = lipgloss.Color("238") // Dark gray
	ColorMuted   = lipgloss.Color("244") // Gray
)

// Lamp cell geometry. The 11-lamp row sets the face width and the
// 4-lamp rows are sized to line up with it.
const (
	lampGap         = 1
	minuteLampWidth = 3
	faceWidth       = berlinClockCore.FiveMinuteLamps*minuteLampWidth + (berlinClockCore.FiveMinuteLamps-1)*lampGap
	quadLampWidth   = (faceWidth - (4-1)*lampGap) / 4
	secondsWidth    = 6
)

// Styles holds all UI styles
type Styles struct {
	title    lipgloss.Style
	clock    lipgloss.Style
	status   lipgloss.Style
	row      lipgloss.Style
	legend   lipgloss.Style
	controls lipgloss.Style
	lamps    map[berlinClockCore.Lamp]lipgloss.Style
}

func initializeStyles(width int) Styles {
	fullWidth := width
	if fullWidth < faceWidth+4 {
		fullWidth = faceWidth + 4
	}

	return Styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Align(lipgloss.Center).
			Width(fullWidth),
		clock: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Align(lipgloss.Center).
			Width(fullWidth),
		status: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Align(lipgloss.Center).
			Width(fullWidth),
		row: lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(fullWidth),
		legend: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Align(lipgloss.Center).
			Width(fullWidth),
		controls: lipgloss.NewStyle().
			Width(fullWidth).
			Align(lipgloss.Center),
		lamps: map[berlinClockCore.Lamp]lipgloss.Style{
			berlinClockCore.Off:    lipgloss.NewStyle().Foreground(ColorOff),
			berlinClockCore.Yellow: lipgloss.NewStyle().Foreground(ColorYellow),
			berlinClockCore.Red:    lipgloss.NewStyle().Foreground(ColorRed),
		},
	}
}
