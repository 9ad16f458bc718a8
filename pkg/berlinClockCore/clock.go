package berlinClockCore

import "time"

// Clock is the live display state: which instant is shown and how.
type Clock struct {
	Hotkeys []Hotkey
	UI      UIConfig

	UTC    bool
	Legend bool
	Paused bool

	frozen time.Time
}

// NewClock creates a Clock from a loaded configuration
func NewClock(cfg *Config) *Clock {
	hotkeys := cfg.Hotkeys
	if len(hotkeys) == 0 {
		hotkeys = DefaultHotkeys()
	}
	ui := cfg.UI
	if len(ui.Layout) == 0 {
		ui = DefaultUIConfig()
	}

	c := &Clock{
		Hotkeys: append([]Hotkey(nil), hotkeys...),
		UI:      ui,
		UTC:     cfg.Clock.UTC,
	}
	c.UpdateHotkeyAvailability()
	return c
}

// Time returns the instant to display given the current wall time
func (c *Clock) Time(now time.Time) time.Time {
	if c.Paused {
		now = c.frozen
	}
	if c.UTC {
		return now.UTC()
	}
	return now.Local()
}

// Face returns the lamps to display given the current wall time
func (c *Clock) Face(now time.Time) Face {
	return FaceAt(c.Time(now))
}

// Pause freezes the display at now
func (c *Clock) Pause(now time.Time) {
	if c.Paused {
		return
	}
	c.Paused = true
	c.frozen = now
	c.UpdateHotkeyAvailability()
}

// Resume returns the display to the running time
func (c *Clock) Resume() {
	if !c.Paused {
		return
	}
	c.Paused = false
	c.frozen = time.Time{}
	c.UpdateHotkeyAvailability()
}

func (c *Clock) ToggleUTC() {
	c.UTC = !c.UTC
}

func (c *Clock) ToggleLegend() {
	c.Legend = !c.Legend
}
