package timelane

import "fmt"

// RoundingMode selects which instant a lossy conversion resolves to.
type RoundingMode int

const (
	// RoundDown selects the latest coarse instant that does not exceed
	// the source instant; toward finer lanes it selects the first
	// contained instant.
	RoundDown RoundingMode = iota

	// RoundUp selects the earliest coarse instant whose first contained
	// instant is at or after the source instant; toward finer lanes it
	// selects the last contained instant.
	RoundUp
)

// String returns "down" or "up".
func (r RoundingMode) String() string {
	switch r {
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	}
	return fmt.Sprintf("RoundingMode(%d)", int(r))
}

// ParseRoundingMode resolves a rounding mode from "down" or "up".
func ParseRoundingMode(name string) (RoundingMode, error) {
	switch name {
	case "down":
		return RoundDown, nil
	case "up":
		return RoundUp, nil
	}
	return 0, fmt.Errorf("unknown rounding mode %q", name)
}
