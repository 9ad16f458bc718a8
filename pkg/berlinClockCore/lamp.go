package berlinClockCore

import (
	"fmt"
	"strings"
)

// Lamp is the state of a single indicator on the clock face.
type Lamp uint8

const (
	Off Lamp = iota
	Yellow
	Red
)

// Symbol returns the single-character display encoding of the lamp.
func (l Lamp) Symbol() rune {
	switch l {
	case Yellow:
		return 'Y'
	case Red:
		return 'R'
	default:
		return 'O'
	}
}

func (l Lamp) String() string {
	return string(l.Symbol())
}

// ParseLamp maps a display symbol back to its lamp state.
func ParseLamp(r rune) (Lamp, error) {
	switch r {
	case 'O':
		return Off, nil
	case 'Y':
		return Yellow, nil
	case 'R':
		return Red, nil
	}
	return Off, fmt.Errorf("unknown lamp symbol %q", r)
}

// LampRow is an ordered row of lamps, leftmost first.
type LampRow []Lamp

func (r LampRow) String() string {
	var b strings.Builder
	b.Grow(len(r))
	for _, l := range r {
		b.WriteRune(l.Symbol())
	}
	return b.String()
}

// Lit counts the lamps that are not off.
func (r LampRow) Lit() int {
	n := 0
	for _, l := range r {
		if l != Off {
			n++
		}
	}
	return n
}

// ParseLampRow decodes a symbol string such as "YYROOOOOOOO".
func ParseLampRow(s string) (LampRow, error) {
	row := make(LampRow, 0, len(s))
	for _, r := range s {
		l, err := ParseLamp(r)
		if err != nil {
			return nil, err
		}
		row = append(row, l)
	}
	return row, nil
}
