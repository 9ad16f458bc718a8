package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"berlinClock/pkg/berlinClockCore"
)

func (m model) View() string {
	var s strings.Builder
	styles := initializeStyles(m.width)
	face := m.clock.Face(m.now)

	components := map[berlinClockCore.UIComponent]func() string{
		berlinClockCore.UIHeader:   func() string { return m.renderHeader(styles, face) },
		berlinClockCore.UISeconds:  func() string { return renderSeconds(styles, face) },
		berlinClockCore.UIHours:    func() string { return renderHours(styles, face) },
		berlinClockCore.UIMinutes:  func() string { return renderMinutes(styles, face) },
		berlinClockCore.UILegend:   func() string { return m.renderLegend(styles, face) },
		berlinClockCore.UIControls: func() string { return m.renderControls(styles) },
	}

	s.WriteString("\n")
	for _, component := range m.clock.UI.Layout {
		if renderFunc, exists := components[component]; exists {
			s.WriteString(renderFunc())
		}
	}

	// Keep content vertically centered
	if height := strings.Count(s.String(), "\n"); m.height > height {
		pad := (m.height - height) / 2
		return strings.Repeat("\n", pad) + s.String()
	}
	return s.String()
}

func (m model) renderHeader(styles Styles, face berlinClockCore.Face) string {
	var s strings.Builder

	s.WriteString(styles.title.Render("Berlin Clock"))
	s.WriteString("\n\n")

	for _, line := range getBigClock(face.Hour, face.Minute, face.Second) {
		s.WriteString(styles.clock.Render(line))
		s.WriteString("\n")
	}

	zone := "Local"
	if m.clock.UTC {
		zone = "UTC"
	}
	status := zone
	if m.clock.Paused {
		status += " · paused"
	}
	if m.feed.Enabled() {
		status += " · " + m.feed.Topic()
	}
	s.WriteString(styles.status.Render(status))
	s.WriteString("\n\n")

	return s.String()
}

// renderLamp draws one lamp as a two-line block of the given width
func renderLamp(styles Styles, l berlinClockCore.Lamp, width int) string {
	glyph := "█"
	if l == berlinClockCore.Off {
		glyph = "░"
	}
	line := strings.Repeat(glyph, width)
	return styles.lamps[l].Render(line + "\n" + line)
}

func renderRow(styles Styles, row berlinClockCore.LampRow, width int) string {
	cells := make([]string, 0, 2*len(row))
	gap := strings.Repeat(" ", lampGap)
	for i, l := range row {
		if i > 0 {
			cells = append(cells, gap)
		}
		cells = append(cells, renderLamp(styles, l, width))
	}
	return styles.row.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...)) + "\n\n"
}

func renderSeconds(styles Styles, face berlinClockCore.Face) string {
	return renderRow(styles, face.Seconds, secondsWidth)
}

func renderHours(styles Styles, face berlinClockCore.Face) string {
	return renderRow(styles, face.Hours[0], quadLampWidth) +
		renderRow(styles, face.Hours[1], quadLampWidth)
}

func renderMinutes(styles Styles, face berlinClockCore.Face) string {
	return renderRow(styles, face.Minutes[0], minuteLampWidth) +
		renderRow(styles, face.Minutes[1], quadLampWidth)
}

func (m model) renderLegend(styles Styles, face berlinClockCore.Face) string {
	if !m.clock.Legend {
		return ""
	}

	labels := []string{"sec", "5h", "1h", "5m", "1m"}
	var s strings.Builder
	for i, row := range face.Rows() {
		s.WriteString(styles.legend.Render(fmt.Sprintf("%-3s %-11s", labels[i], row)))
		s.WriteString("\n")
	}
	s.WriteString("\n")
	return s.String()
}

func (m model) renderControls(styles Styles) string {
	return styles.controls.Render(m.clock.GetAvailableHotkeys()) + "\n"
}
