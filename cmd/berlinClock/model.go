package main

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"berlinClock/pkg/berlinClockCore"
	"berlinClock/pkg/lampfeed"
)

type tickMsg time.Time

type model struct {
	clock         *berlinClockCore.Clock
	feed          *lampfeed.Publisher
	logger        *slog.Logger
	interval      time.Duration
	now           time.Time
	width, height int
}

func initialModel(cfg *berlinClockCore.Config, feed *lampfeed.Publisher, logger *slog.Logger, now time.Time) model {
	return model{
		clock:    berlinClockCore.NewClock(cfg),
		feed:     feed,
		logger:   logger,
		interval: cfg.TickInterval(),
		now:      now,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tick(m.interval), tea.EnterAltScreen)
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
