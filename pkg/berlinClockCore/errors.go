package berlinClockCore

import (
	"errors"
	"fmt"
)

// ErrOutOfRange matches any *OutOfRangeError via errors.Is.
var ErrOutOfRange = errors.New("time component out of range")

// OutOfRangeError reports a time component outside its valid range.
type OutOfRangeError struct {
	Component string
	Value     int
	Min       int
	Max       int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Component, e.Value, e.Min, e.Max)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func checkRange(component string, value, min, max int) error {
	if value < min || value > max {
		return &OutOfRangeError{Component: component, Value: value, Min: min, Max: max}
	}
	return nil
}
