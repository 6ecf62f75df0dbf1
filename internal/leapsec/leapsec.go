// Package leapsec holds the fixed table of UTC leap seconds and the
// minute/second lane conversions that depend on it.
//
// The table covers every leap second through the last one inserted
// (December 2016, taking effect at the 2017 boundary). Minutes beyond the
// table convert as if no further leap seconds exist; the module must be
// rebuilt with an extended table if a new one is ever declared.
package leapsec

import (
	"sort"

	"github.com/roach88/timelane/internal/calendar"
	"github.com/roach88/timelane/internal/markmath"
)

// Entry records a minute that was lengthened by an inserted leap second.
type Entry struct {
	// Minute is the mark of the 61-second minute (23:59 UTC on the last
	// day of June or December).
	Minute int64

	// ExtraSecond is true for inserted (positive) leap seconds. A negative
	// leap second has never been scheduled, but the table format leaves
	// room for one.
	ExtraSecond bool
}

// Every leap second on record, identified by the month that begins
// immediately after it.
var leapSecondMonths = [...]struct {
	year  int64
	month int
}{
	{1972, 7}, {1973, 1}, {1974, 1}, {1975, 1}, {1976, 1}, {1977, 1},
	{1978, 1}, {1979, 1}, {1980, 1}, {1981, 7}, {1982, 7}, {1983, 7},
	{1985, 7}, {1988, 1}, {1990, 1}, {1991, 1}, {1992, 7}, {1993, 7},
	{1994, 7}, {1996, 1}, {1997, 7}, {1999, 1}, {2006, 1}, {2009, 1},
	{2012, 7}, {2015, 7}, {2017, 1},
}

var entries = buildEntries()

// epochOffset anchors the cumulative count so that minute mark 0 sees zero
// accumulated leap seconds.
var epochOffset = countBefore(0)

func buildEntries() [len(leapSecondMonths)]Entry {
	var out [len(leapSecondMonths)]Entry
	for i, d := range leapSecondMonths {
		day, ok := calendar.MonthStartDay(d.year, d.month)
		if !ok {
			panic("leapsec: table entry out of range")
		}
		// The lengthened minute is the one just before the month boundary.
		out[i] = Entry{Minute: (day-1)*24*60 - 1, ExtraSecond: true}
	}
	return out
}

// Table returns a copy of the leap second entries in increasing minute
// order.
func Table() []Entry {
	out := make([]Entry, len(entries))
	copy(out[:], entries[:])
	return out
}

// countBefore returns how many table entries have a minute mark strictly
// below minute.
func countBefore(minute int64) int64 {
	i := sort.Search(len(entries), func(i int) bool {
		return entries[i].Minute >= minute
	})
	return int64(i)
}

// CumulativeBefore returns the number of leap seconds inserted in minutes
// with mark strictly below minute, relative to the epoch minute 0.
// Minutes before the epoch therefore see negative counts.
func CumulativeBefore(minute int64) int64 {
	return countBefore(minute) - epochOffset
}

// MinuteLength returns the number of seconds in a minute: 60, or 61 for a
// minute with an inserted leap second.
func MinuteLength(minute int64) int64 {
	i := sort.Search(len(entries), func(i int) bool {
		return entries[i].Minute >= minute
	})
	if i < len(entries) && entries[i].Minute == minute && entries[i].ExtraSecond {
		return 61
	}
	return 60
}

// MinuteStartSecond returns the second mark of the first second of a
// minute. ok=false reports that the result is unrepresentable.
func MinuteStartSecond(minute int64) (int64, bool) {
	base, ok := markmath.Mul(minute, 60)
	if !ok {
		return 0, false
	}
	return markmath.Add(base, CumulativeBefore(minute))
}

// SecondToMinute returns the minute containing a second mark, rounded
// down.
//
// A plain division estimate is exact after one re-division: consecutive
// table entries are at least six months apart, so the cumulative count
// never varies by more than one within the estimate's error and never
// approaches the 60-second ratio.
func SecondToMinute(second int64) int64 {
	estimate := markmath.DivFloor(second, 60)
	return markmath.DivFloor(second-CumulativeBefore(estimate), 60)
}

// SecondToMinuteUp returns the smallest minute whose first second is at or
// after the given second mark.
func SecondToMinuteUp(second int64) int64 {
	estimate := markmath.DivCeil(second, 60)
	minute := markmath.DivCeil(second-CumulativeBefore(estimate), 60)
	// Just after a leap minute starts, the estimate has already crossed
	// the table entry and the re-division lands one minute short. A
	// single correction restores the ceiling; an unrepresentable start
	// can only lie beyond the second and needs none.
	if start, ok := MinuteStartSecond(minute); ok && start < second {
		minute++
	}
	return minute
}
