package berlinClockCore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecondsLamp_FailsOutOfRange(t *testing.T) {
	for _, seconds := range []int{-1, 60, -100, 1000} {
		row, err := SecondsLamp(seconds)
		require.Error(t, err, "converting %d seconds", seconds)
		assert.Nil(t, row)

		var rangeErr *OutOfRangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, "seconds", rangeErr.Component)
		assert.Equal(t, seconds, rangeErr.Value)
		assert.Equal(t, 0, rangeErr.Min)
		assert.Equal(t, 59, rangeErr.Max)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
}

func TestSecondsLamp_YellowLampBlinksEveryOtherSecond(t *testing.T) {
	testCases := []struct {
		seconds  int
		expected string
	}{
		{0, "Y"},
		{1, "O"},
		{2, "Y"},
		{58, "Y"},
		{59, "O"},
	}

	for _, tc := range testCases {
		row, err := SecondsLamp(tc.seconds)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, row.String(), "converting %d seconds", tc.seconds)
	}
}

func TestSecondsLamp_AllSeconds(t *testing.T) {
	for s := 0; s <= 59; s++ {
		row, err := SecondsLamp(s)
		require.NoError(t, err)
		require.Len(t, row, 1)
		if s%2 == 0 {
			assert.Equal(t, Yellow, row[0], "second %d", s)
		} else {
			assert.Equal(t, Off, row[0], "second %d", s)
		}
	}
}

func TestHoursRows_FailsOutOfRange(t *testing.T) {
	for _, hours := range []int{-1, 25} {
		_, err := HoursRows(hours)
		assert.ErrorIs(t, err, ErrOutOfRange, "converting %d hours", hours)

		var rangeErr *OutOfRangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, "hours", rangeErr.Component)
		assert.Equal(t, 24, rangeErr.Max)
	}
}

func TestHoursRows_GeneratesTwoRowsOfFourLamps(t *testing.T) {
	rows, err := HoursRows(0)
	require.NoError(t, err)
	assert.Len(t, rows[0], 4)
	assert.Len(t, rows[1], 4)
}

func TestHoursRows_FirstRowEachLampIs5Hours(t *testing.T) {
	testCases := map[int]string{
		0:  "OOOO",
		1:  "OOOO",
		4:  "OOOO",
		5:  "ROOO",
		13: "RROO",
		15: "RRRO",
		24: "RRRR",
	}

	for hours, expected := range testCases {
		rows, err := HoursRows(hours)
		require.NoError(t, err)
		assert.Equal(t, expected, rows[0].String(), "converting %d hours", hours)
	}
}

func TestHoursRows_SecondRowEachLampIs1Hour(t *testing.T) {
	testCases := map[int]string{
		0:  "OOOO",
		1:  "ROOO",
		4:  "RRRR",
		5:  "OOOO",
		13: "RRRO",
		15: "OOOO",
		24: "RRRR",
	}

	for hours, expected := range testCases {
		rows, err := HoursRows(hours)
		require.NoError(t, err)
		assert.Equal(t, expected, rows[1].String(), "converting %d hours", hours)
	}
}

func TestHoursRows_AllHours(t *testing.T) {
	for h := 0; h <= 24; h++ {
		rows, err := HoursRows(h)
		require.NoError(t, err)
		assertThermometer(t, rows[0], h/5, func(int) Lamp { return Red }, fmt.Sprintf("5-hour row at %d", h))
		assertThermometer(t, rows[1], h%5, func(int) Lamp { return Red }, fmt.Sprintf("1-hour row at %d", h))
	}
}

func TestMinutesRows_FailsOutOfRange(t *testing.T) {
	for _, minutes := range []int{-1, 60} {
		_, err := MinutesRows(minutes)
		assert.ErrorIs(t, err, ErrOutOfRange, "converting %d minutes", minutes)

		var rangeErr *OutOfRangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, "minutes", rangeErr.Component)
		assert.Equal(t, 59, rangeErr.Max)
	}
}

func TestMinutesRows_RowLengths(t *testing.T) {
	rows, err := MinutesRows(0)
	require.NoError(t, err)
	assert.Len(t, rows[0], 11)
	assert.Len(t, rows[1], 4)
}

func TestMinutesRows_FirstRowEachLampIs5Minutes(t *testing.T) {
	testCases := []struct {
		minutes  int
		expected string
	}{
		{0, "OOOOOOOOOOO"},
		{1, "OOOOOOOOOOO"},
		{4, "OOOOOOOOOOO"},
		{5, "YOOOOOOOOOO"},
		{6, "YOOOOOOOOOO"},
		{12, "YYOOOOOOOOO"},
		{13, "YYOOOOOOOOO"},
		{14, "YYOOOOOOOOO"},
	}

	for _, tc := range testCases {
		rows, err := MinutesRows(tc.minutes)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, rows[0].String(), "converting %d minutes", tc.minutes)
	}
}

func TestMinutesRows_FirstRowEveryQuarterIsRed(t *testing.T) {
	testCases := []struct {
		minutes  int
		expected string
	}{
		{15, "YYROOOOOOOO"},
		{16, "YYROOOOOOOO"},
		{24, "YYRYOOOOOOO"},
		{25, "YYRYYOOOOOO"},
		{30, "YYRYYROOOOO"},
		{45, "YYRYYRYYROO"},
		{59, "YYRYYRYYRYY"},
	}

	for _, tc := range testCases {
		rows, err := MinutesRows(tc.minutes)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, rows[0].String(), "converting %d minutes", tc.minutes)
	}
}

func TestMinutesRows_SecondRowEachLampIs1Minute(t *testing.T) {
	testCases := []struct {
		minutes  int
		expected string
	}{
		{0, "OOOO"},
		{1, "YOOO"},
		{4, "YYYY"},
		{5, "OOOO"},
		{6, "YOOO"},
		{12, "YYOO"},
		{13, "YYYO"},
		{14, "YYYY"},
		{15, "OOOO"},
		{16, "YOOO"},
		{24, "YYYY"},
		{25, "OOOO"},
		{59, "YYYY"},
	}

	for _, tc := range testCases {
		rows, err := MinutesRows(tc.minutes)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, rows[1].String(), "converting %d minutes", tc.minutes)
	}
}

func TestMinutesRows_AllMinutes(t *testing.T) {
	for m := 0; m <= 59; m++ {
		rows, err := MinutesRows(m)
		require.NoError(t, err)
		assertThermometer(t, rows[0], m/5, quarterMarker, fmt.Sprintf("5-minute row at %d", m))
		assertThermometer(t, rows[1], m%5, func(int) Lamp { return Yellow }, fmt.Sprintf("1-minute row at %d", m))
	}
}

func TestConverters_ReturnFreshRows(t *testing.T) {
	first, err := MinutesRows(59)
	require.NoError(t, err)
	first[0][0] = Off
	first[1][0] = Off

	second, err := MinutesRows(59)
	require.NoError(t, err)
	assert.Equal(t, "YYRYYRYYRYY", second[0].String())
	assert.Equal(t, "YYYY", second[1].String())

	hours, err := HoursRows(24)
	require.NoError(t, err)
	hours[0][3] = Off
	again, err := HoursRows(24)
	require.NoError(t, err)
	assert.Equal(t, "RRRR", again[0].String())

	sec, err := SecondsLamp(0)
	require.NoError(t, err)
	sec[0] = Red
	sec, err = SecondsLamp(0)
	require.NoError(t, err)
	assert.Equal(t, LampRow{Yellow}, sec)
}

func TestConverters_Idempotent(t *testing.T) {
	for m := 0; m <= 59; m++ {
		a, err := MinutesRows(m)
		require.NoError(t, err)
		b, err := MinutesRows(m)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
	for h := 0; h <= 24; h++ {
		a, _ := HoursRows(h)
		b, _ := HoursRows(h)
		assert.Equal(t, a, b)
	}
}

// assertThermometer checks that exactly the first n lamps are lit with the
// expected colors and the rest are off.
func assertThermometer(t *testing.T, row LampRow, n int, color func(int) Lamp, msg string) {
	t.Helper()
	assert.Equal(t, n, row.Lit(), msg)
	for i, l := range row {
		if i < n {
			assert.Equal(t, color(i), l, "%s: lamp %d", msg, i)
		} else {
			assert.Equal(t, Off, l, "%s: lamp %d", msg, i)
		}
	}
}
