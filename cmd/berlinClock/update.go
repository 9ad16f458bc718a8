package main

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"berlinClock/pkg/berlinClockCore"
	"berlinClock/pkg/lampfeed"
)

// faceSentMsg reports the outcome of a lamp feed publish
type faceSentMsg struct {
	face berlinClockCore.Face
	err  error
}

func (m model) handleKey(key string) (tea.Model, tea.Cmd) {
	action, exists := m.clock.GetAction(key)
	if !exists {
		return m, nil
	}

	m.logger.Debug("Hotkey pressed", "key", key, "action", action)

	switch action {
	case berlinClockCore.ActionQuit:
		return m, tea.Quit

	case berlinClockCore.ActionPause:
		m.clock.Pause(m.now)

	case berlinClockCore.ActionResume:
		m.clock.Resume()
		return m, m.publish()

	case berlinClockCore.ActionToggleUTC:
		m.clock.ToggleUTC()
		return m, m.publish()

	case berlinClockCore.ActionToggleLegend:
		m.clock.ToggleLegend()
	}

	return m, nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())

	case tickMsg:
		m.now = time.Time(msg)
		return m, tea.Batch(tick(m.interval), m.publish())

	case faceSentMsg:
		switch {
		case errors.Is(msg.err, lampfeed.ErrPublishInFlight):
			m.logger.Debug("Skipped face, previous publish still running", "time", msg.face.Clock())
		case msg.err != nil:
			m.logger.Warn("Failed to publish face", "time", msg.face.Clock(), "error", msg.err)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// publish sends the displayed face to the lamp feed off the update loop,
// so a slow broker never stalls the display or the quit keys.
func (m model) publish() tea.Cmd {
	if !m.feed.Enabled() {
		return nil
	}
	face := m.clock.Face(m.now)
	feed := m.feed
	return func() tea.Msg {
		return faceSentMsg{face: face, err: feed.Publish(face)}
	}
}
