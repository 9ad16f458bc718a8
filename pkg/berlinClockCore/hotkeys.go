package berlinClockCore

import (
	"fmt"
	"sort"
	"strings"
)

type Action string

const (
	ActionQuit         Action = "quit"
	ActionPause        Action = "pause"
	ActionResume       Action = "resume"
	ActionToggleUTC    Action = "toggle_utc"
	ActionToggleLegend Action = "toggle_legend"
)

// Valid reports whether a is a known action
func (a Action) Valid() bool {
	switch a {
	case ActionQuit, ActionPause, ActionResume, ActionToggleUTC, ActionToggleLegend:
		return true
	}
	return false
}

type Hotkey struct {
	Key         string `toml:"key"`
	Action      Action `toml:"action"`
	Description string `toml:"description"`
	Available   bool   `toml:"-"`
}

// Default configuration if no hotkeys are configured
var defaultHotkeys = []Hotkey{
	{Key: "q", Action: ActionQuit, Description: "Quit"},
	{Key: "ctrl+c", Action: ActionQuit, Description: "Quit"},
	{Key: "space", Action: ActionPause, Description: "Pause"},
	{Key: "space", Action: ActionResume, Description: "Resume"},
	{Key: "u", Action: ActionToggleUTC, Description: "Local/UTC"},
	{Key: "l", Action: ActionToggleLegend, Description: "Legend"},
}

// DefaultHotkeys returns a fresh copy of the built-in bindings
func DefaultHotkeys() []Hotkey {
	hotkeys := make([]Hotkey, len(defaultHotkeys))
	copy(hotkeys, defaultHotkeys)
	return hotkeys
}

// UpdateHotkeyAvailability updates which hotkeys are currently available based on clock state
func (c *Clock) UpdateHotkeyAvailability() {
	for i := range c.Hotkeys {
		switch c.Hotkeys[i].Action {
		case ActionPause:
			c.Hotkeys[i].Available = !c.Paused
		case ActionResume:
			c.Hotkeys[i].Available = c.Paused
		default:
			c.Hotkeys[i].Available = true
		}
	}
}

// GetAvailableHotkeys returns a formatted string of currently available hotkeys
func (c *Clock) GetAvailableHotkeys() string {
	actionMap := make(map[Action][]string)

	var actions []Action
	seenActions := make(map[Action]bool)

	for _, hk := range c.Hotkeys {
		if hk.Available {
			actionMap[hk.Action] = append(actionMap[hk.Action], hk.Key)
			if !seenActions[hk.Action] {
				actions = append(actions, hk.Action)
				seenActions[hk.Action] = true
			}
		}
	}

	descMap := make(map[Action]string)
	for _, hk := range c.Hotkeys {
		if _, ok := descMap[hk.Action]; !ok {
			descMap[hk.Action] = hk.Description
		}
	}

	parts := make([]string, 0, len(actions))
	for _, action := range actions {
		// Sort the keys for consistent ordering
		keys := actionMap[action]
		sort.Strings(keys)
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(keys, "/"), descMap[action]))
	}

	return strings.Join(parts, "  ")
}

// GetAction returns the action associated with a key press, if any
func (c *Clock) GetAction(key string) (Action, bool) {
	if key == " " {
		key = "space"
	}
	for _, hk := range c.Hotkeys {
		if hk.Key == key && hk.Available {
			return hk.Action, true
		}
	}
	return "", false
}
