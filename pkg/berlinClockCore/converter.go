package berlinClockCore

// Face geometry and component ranges
const (
	SecondsLamps     = 1
	FiveHourLamps    = 4
	OneHourLamps     = 4
	FiveMinuteLamps  = 11
	OneMinuteLamps   = 4
	MaxHours         = 24
	MaxMinutes       = 59
	MaxSeconds       = 59
	quarterEveryLamp = 3
)

// SecondsLamp returns the single seconds lamp, lit yellow on even seconds.
func SecondsLamp(seconds int) (LampRow, error) {
	if err := checkRange("seconds", seconds, 0, MaxSeconds); err != nil {
		return nil, err
	}

	row := make(LampRow, SecondsLamps)
	if seconds%2 == 0 {
		row[0] = Yellow
	}
	return row, nil
}

// HoursRows returns the 5-hour row and the 1-hour row.
func HoursRows(hours int) ([2]LampRow, error) {
	if err := checkRange("hours", hours, 0, MaxHours); err != nil {
		return [2]LampRow{}, err
	}

	return [2]LampRow{
		fill(FiveHourLamps, hours/5, func(int) Lamp { return Red }),
		fill(OneHourLamps, hours%5, func(int) Lamp { return Red }),
	}, nil
}

// MinutesRows returns the 5-minute row and the 1-minute row. Every third
// lamp of the 5-minute row marks a quarter hour and is red.
func MinutesRows(minutes int) ([2]LampRow, error) {
	if err := checkRange("minutes", minutes, 0, MaxMinutes); err != nil {
		return [2]LampRow{}, err
	}

	return [2]LampRow{
		fill(FiveMinuteLamps, minutes/5, quarterMarker),
		fill(OneMinuteLamps, minutes%5, func(int) Lamp { return Yellow }),
	}, nil
}

func quarterMarker(i int) Lamp {
	if (i+1)%quarterEveryLamp == 0 {
		return Red
	}
	return Yellow
}

// fill lights the first n lamps of a row of the given size from the left.
func fill(size, n int, color func(i int) Lamp) LampRow {
	row := make(LampRow, size)
	for i := 0; i < n && i < size; i++ {
		row[i] = color(i)
	}
	return row
}
