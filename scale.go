package timelane

import (
	"github.com/roach88/timelane/internal/calendar"
	"github.com/roach88/timelane/internal/leapsec"
	"github.com/roach88/timelane/internal/markmath"
)

// stepKind classifies an adjacent lane pair. Regular pairs have a fixed
// fine-to-coarse ratio across all coarse instants; the three irregular
// pairs delegate to calendar or leap second arithmetic.
type stepKind int

const (
	stepRegular stepKind = iota
	stepMinuteSecond
	stepMonthDay
	stepYearMonth
)

// scalingStep is the conversion rule for one adjacent lane pair. The table
// below is fixed at build time and never exposed as mutable state.
type scalingStep struct {
	fine   Lane
	coarse Lane
	kind   stepKind
	ratio  int64 // fine marks per coarse mark, regular pairs only
	bias   int64 // coarse-mark numbering offset (the day lane starts at 1)
}

// steps is indexed by the fine lane of each pair.
var steps = [...]scalingStep{
	Nanosecond:  {fine: Nanosecond, coarse: Microsecond, kind: stepRegular, ratio: 1000},
	Microsecond: {fine: Microsecond, coarse: Millisecond, kind: stepRegular, ratio: 1000},
	Millisecond: {fine: Millisecond, coarse: Second, kind: stepRegular, ratio: 1000},
	Second:      {fine: Second, coarse: Minute, kind: stepMinuteSecond},
	Minute:      {fine: Minute, coarse: Hour, kind: stepRegular, ratio: 60},
	Hour:        {fine: Hour, coarse: Day, kind: stepRegular, ratio: 24, bias: 1},
	Day:         {fine: Day, coarse: Month, kind: stepMonthDay},
	Month:       {fine: Month, coarse: Year, kind: stepYearMonth},
}

// expand returns the first fine mark contained in coarse mark m.
func (s *scalingStep) expand(m int64) (int64, bool) {
	switch s.kind {
	case stepMinuteSecond:
		return leapsec.MinuteStartSecond(m)
	case stepMonthDay:
		return calendar.MonthToDay(m)
	case stepYearMonth:
		return calendar.YearToMonth(m)
	}
	v, ok := markmath.Sub(m, s.bias)
	if !ok {
		return 0, false
	}
	return markmath.Mul(v, s.ratio)
}

// width returns the number of fine marks contained in coarse mark m.
// Only valid once expand(m) is known to be representable.
func (s *scalingStep) width(m int64) int64 {
	switch s.kind {
	case stepMinuteSecond:
		return leapsec.MinuteLength(m)
	case stepMonthDay:
		return calendar.MonthLength(m)
	case stepYearMonth:
		return 12
	}
	return s.ratio
}

// expandUp returns the last fine mark contained in coarse mark m.
func (s *scalingStep) expandUp(m int64) (int64, bool) {
	first, ok := s.expand(m)
	if !ok {
		return 0, false
	}
	return markmath.Add(first, s.width(m)-1)
}

// compress returns the coarse mark for fine mark m under the given
// rounding. Compression shrinks magnitudes and cannot overflow.
func (s *scalingStep) compress(m int64, up bool) int64 {
	switch s.kind {
	case stepMinuteSecond:
		if up {
			return leapsec.SecondToMinuteUp(m)
		}
		return leapsec.SecondToMinute(m)
	case stepMonthDay:
		if up {
			return calendar.DayToMonthUp(m)
		}
		return calendar.DayToMonth(m)
	case stepYearMonth:
		if up {
			return calendar.MonthToYearUp(m)
		}
		return calendar.MonthToYear(m)
	}
	if up {
		return markmath.DivCeil(m, s.ratio) + s.bias
	}
	return markmath.DivFloor(m, s.ratio) + s.bias
}

// Scale converts mark m from one lane to another.
//
// Toward a coarser lane the result is rounded per mode: RoundDown yields
// the latest coarse mark starting at or before m, RoundUp the earliest
// coarse mark starting at or after m. Toward a finer lane RoundDown yields
// the first fine mark contained in m and RoundUp the last one, so a
// round trip Scale(Scale(m, Second, Year, r), Year, Second, r) lands on
// the first or last second of the year.
//
// Lane partitions nest (every coarse mark covers whole marks of the
// adjacent finer lane), so applying the rounding at every hop is identical
// to rounding once at the coarse end of the chain.
func Scale(m Mark, from, to Lane, mode RoundingMode) (Mark, error) {
	v := int64(m)
	if to < from {
		for l := from; l > to; l-- {
			s := &steps[l-1]
			in := v
			var ok bool
			if mode == RoundUp {
				v, ok = s.expandUp(in)
			} else {
				v, ok = s.expand(in)
			}
			if !ok {
				return 0, expandOverflow(Mark(in), s.coarse, s.fine)
			}
		}
		return Mark(v), nil
	}
	for l := from; l < to; l++ {
		v = steps[l].compress(v, mode == RoundUp)
	}
	return Mark(v), nil
}

// Expand converts mark m one hop to the adjacent finer lane, selecting the
// canonical first contained instant. It panics when called on Nanosecond,
// which has no finer lane.
func Expand(m Mark, from Lane) (Mark, error) {
	fine, ok := from.Finer()
	if !ok {
		panic("timelane: no lane finer than nanosecond")
	}
	v, ok := steps[fine].expand(int64(m))
	if !ok {
		return 0, expandOverflow(m, from, fine)
	}
	return Mark(v), nil
}

// Compress converts mark m one hop to the adjacent coarser lane under the
// given rounding. It panics when called on Year, which has no coarser
// lane.
func Compress(m Mark, from Lane, mode RoundingMode) (Mark, error) {
	if _, ok := from.Coarser(); !ok {
		panic("timelane: no lane coarser than year")
	}
	return Mark(steps[from].compress(int64(m), mode == RoundUp)), nil
}
