package timelane

import "fmt"

// Mark is a specific instant on a time lane. A mark is meaningful only in
// the context of the lane it was produced for.
type Mark int64

// Lane identifies a time granularity. Lanes form a closed, total order
// from finest (Nanosecond) to coarsest (Year); no two lanes share a
// granularity.
type Lane int

const (
	Nanosecond Lane = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Month
	Year
)

var laneNames = [...]string{
	Nanosecond:  "nanosecond",
	Microsecond: "microsecond",
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Month:       "month",
	Year:        "year",
}

// Lanes returns every lane in order from finest to coarsest.
func Lanes() []Lane {
	out := make([]Lane, len(laneNames))
	for i := range out {
		out[i] = Lane(i)
	}
	return out
}

// String returns the lowercase lane name.
func (l Lane) String() string {
	if l < 0 || int(l) >= len(laneNames) {
		return fmt.Sprintf("Lane(%d)", int(l))
	}
	return laneNames[l]
}

// FinerThan reports whether l has a smaller granularity than other.
func (l Lane) FinerThan(other Lane) bool { return l < other }

// CoarserThan reports whether l has a larger granularity than other.
func (l Lane) CoarserThan(other Lane) bool { return l > other }

// Finer returns the adjacent finer lane, or false from Nanosecond.
func (l Lane) Finer() (Lane, bool) {
	if l <= Nanosecond {
		return l, false
	}
	return l - 1, true
}

// Coarser returns the adjacent coarser lane, or false from Year.
func (l Lane) Coarser() (Lane, bool) {
	if l >= Year {
		return l, false
	}
	return l + 1, true
}

// ParseLane resolves a lane from its lowercase name.
func ParseLane(name string) (Lane, error) {
	for i, n := range laneNames {
		if n == name {
			return Lane(i), nil
		}
	}
	return 0, fmt.Errorf("unknown lane %q", name)
}
