package berlinClockCore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClock(t *testing.T) *Clock {
	t.Helper()
	cfg := NewConfig()
	cfg.Clock.UTC = true
	return NewClock(cfg)
}

func TestNewClock_DefaultsWhenUnconfigured(t *testing.T) {
	c := NewClock(NewConfig())

	assert.Len(t, c.Hotkeys, len(defaultHotkeys))
	assert.Equal(t, DefaultUIConfig(), c.UI)
	assert.False(t, c.Paused)
	assert.False(t, c.Legend)
}

func TestClock_Face(t *testing.T) {
	c := newTestClock(t)
	zone := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2024, 6, 1, 15, 17, 1, 0, zone)

	assert.Equal(t, "13:17:01", c.Face(now).Clock())

	c.ToggleUTC()
	assert.False(t, c.UTC)
	assert.Equal(t, now.Local().Hour(), c.Face(now).Hour)
}

func TestClock_PauseFreezesFace(t *testing.T) {
	c := newTestClock(t)
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	c.Pause(start)
	require.True(t, c.Paused)

	later := start.Add(90 * time.Second)
	assert.Equal(t, "10:00:00", c.Face(later).Clock())

	// Pausing again keeps the first frozen instant
	c.Pause(later)
	assert.Equal(t, "10:00:00", c.Face(later).Clock())

	c.Resume()
	assert.False(t, c.Paused)
	assert.Equal(t, "10:01:30", c.Face(later).Clock())
}

func TestClock_HotkeyAvailability(t *testing.T) {
	c := newTestClock(t)

	action, ok := c.GetAction(" ")
	require.True(t, ok)
	assert.Equal(t, ActionPause, action)

	c.Pause(time.Now())
	action, ok = c.GetAction("space")
	require.True(t, ok)
	assert.Equal(t, ActionResume, action)

	c.Resume()
	action, ok = c.GetAction("space")
	require.True(t, ok)
	assert.Equal(t, ActionPause, action)

	action, ok = c.GetAction("ctrl+c")
	require.True(t, ok)
	assert.Equal(t, ActionQuit, action)

	_, ok = c.GetAction("z")
	assert.False(t, ok)
}

func TestClock_GetAvailableHotkeys(t *testing.T) {
	c := newTestClock(t)
	assert.Equal(t, "ctrl+c/q: Quit  space: Pause  u: Local/UTC  l: Legend", c.GetAvailableHotkeys())

	c.Pause(time.Now())
	assert.Equal(t, "ctrl+c/q: Quit  space: Resume  u: Local/UTC  l: Legend", c.GetAvailableHotkeys())
}

func TestClock_ToggleLegend(t *testing.T) {
	c := newTestClock(t)
	c.ToggleLegend()
	assert.True(t, c.Legend)
	c.ToggleLegend()
	assert.False(t, c.Legend)
}

func TestAction_Valid(t *testing.T) {
	for _, a := range []Action{ActionQuit, ActionPause, ActionResume, ActionToggleUTC, ActionToggleLegend} {
		assert.True(t, a.Valid(), a)
	}
	assert.False(t, Action("split").Valid())
}

func TestUIConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultUIConfig().Validate())
	assert.NoError(t, UIConfig{}.Validate())
	assert.Error(t, UIConfig{Layout: []UIComponent{"splits"}}.Validate())
}
