package core

import "math"

// ParameterControl describes an adjustable integer parameter exposed on a
// menu. Steps and bounds are optional.
type ParameterControl struct {
	Key   string
	Label string

	Step int

	Min    int
	Max    int
	HasMin bool
	HasMax bool
}

// Clamp restricts value to the control's bounds.
func (c ParameterControl) Clamp(value int) int {
	if c.HasMin && value < c.Min {
		value = c.Min
	}
	if c.HasMax && value > c.Max {
		value = c.Max
	}
	return value
}

// Adjust moves value by one step in direction (negative or positive) and
// clamps the result.
func (c ParameterControl) Adjust(value, direction int) int {
	if direction == 0 {
		return c.Clamp(value)
	}
	step := c.Step
	if step <= 0 {
		step = 1
	}
	if direction < 0 {
		step = -step
	}
	// Guard against overflow on unbounded controls.
	if step > 0 && value > math.MaxInt-step {
		return c.Clamp(math.MaxInt)
	}
	if step < 0 && value < math.MinInt-step {
		return c.Clamp(math.MinInt)
	}
	return c.Clamp(value + step)
}

// CanAdjust reports whether moving in direction would change value.
func (c ParameterControl) CanAdjust(value, direction int) bool {
	return direction != 0 && c.Adjust(value, direction) != value
}
