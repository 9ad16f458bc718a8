package berlinClockCore

import "fmt"

type UIComponent string

const (
	UIHeader   UIComponent = "header"
	UISeconds  UIComponent = "seconds"
	UIHours    UIComponent = "hours"
	UIMinutes  UIComponent = "minutes"
	UILegend   UIComponent = "legend"
	UIControls UIComponent = "controls"
)

type UIConfig struct {
	Layout []UIComponent `toml:"layout"`
}

var defaultLayout = []UIComponent{
	UIHeader,
	UISeconds,
	UIHours,
	UIMinutes,
	UILegend,
	UIControls,
}

// DefaultUIConfig returns the built-in layout
func DefaultUIConfig() UIConfig {
	layout := make([]UIComponent, len(defaultLayout))
	copy(layout, defaultLayout)
	return UIConfig{Layout: layout}
}

// Validate rejects unknown or repeated components
func (u UIConfig) Validate() error {
	seen := make(map[UIComponent]bool, len(u.Layout))
	for _, c := range u.Layout {
		switch c {
		case UIHeader, UISeconds, UIHours, UIMinutes, UILegend, UIControls:
		default:
			return fmt.Errorf("unknown UI component %q", c)
		}
		if seen[c] {
			return fmt.Errorf("UI component %q listed twice", c)
		}
		seen[c] = true
	}
	return nil
}
