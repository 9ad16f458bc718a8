package berlinClockCore

import (
	"fmt"
	"strings"
	"time"
)

// Face is the complete lamp state of the clock for one instant.
type Face struct {
	Hour, Minute, Second int

	Seconds LampRow
	Hours   [2]LampRow
	Minutes [2]LampRow
}

// NewFace converts the three time components into a clock face.
func NewFace(hours, minutes, seconds int) (Face, error) {
	sec, err := SecondsLamp(seconds)
	if err != nil {
		return Face{}, err
	}
	hrs, err := HoursRows(hours)
	if err != nil {
		return Face{}, err
	}
	mins, err := MinutesRows(minutes)
	if err != nil {
		return Face{}, err
	}

	return Face{
		Hour:    hours,
		Minute:  minutes,
		Second:  seconds,
		Seconds: sec,
		Hours:   hrs,
		Minutes: mins,
	}, nil
}

// FaceAt returns the face for the wall-clock time of t in its location.
func FaceAt(t time.Time) Face {
	f, err := NewFace(t.Hour(), t.Minute(), t.Second())
	if err != nil {
		// time.Time components are always in range
		panic(err)
	}
	return f
}

// ParseFace parses "hh:mm:ss" and converts it. 24:00:00 is accepted.
func ParseFace(s string) (Face, error) {
	var h, m, sec int
	var rest string
	n, _ := fmt.Sscanf(strings.TrimSpace(s), "%d:%d:%d%s", &h, &m, &sec, &rest)
	if n != 3 {
		return Face{}, fmt.Errorf("invalid time %q: want hh:mm:ss", s)
	}

	f, err := NewFace(h, m, sec)
	if err != nil {
		return Face{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return f, nil
}

// Rows returns the five rows top to bottom.
func (f Face) Rows() []LampRow {
	return []LampRow{f.Seconds, f.Hours[0], f.Hours[1], f.Minutes[0], f.Minutes[1]}
}

// Clock formats the time the face was built from.
func (f Face) Clock() string {
	return fmt.Sprintf("%02d:%02d:%02d", f.Hour, f.Minute, f.Second)
}

// Equal reports whether both faces show the same lamps.
func (f Face) Equal(o Face) bool {
	a, b := f.Rows(), o.Rows()
	for i := range a {
		if a[i].String() != b[i].String() {
			return false
		}
	}
	return true
}

func (f Face) String() string {
	rows := f.Rows()
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
