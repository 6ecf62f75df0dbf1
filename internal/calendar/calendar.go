package calendar

import (
	"math"

	"github.com/roach88/timelane/internal/markmath"
)

// EpochYear is the year whose first instant is mark 0 in the second lane
// (and mark 1 in the day lane, mark 1 in the month lane).
const EpochYear = 2000

const (
	// Leap days between year 1 and EpochYear under the 4/100/400 rule.
	epochLeapDays = 484

	// The Gregorian calendar repeats exactly every 400 years.
	daysPer400Years     = 146097
	leapDaysPer400Years = 97
)

// monthStarts[m] is the day-of-year offset of month m+1; the 13th entry is
// the year length, so monthStarts[m+1]-monthStarts[m] is a month length.
var monthStarts = [13]int64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

var monthStartsLeap = [13]int64{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366}

// IsLeapYear reports whether year is a Gregorian leap year under
// astronomical numbering. Year 0 (1 BC) is a leap year.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int64) int64 {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the length of month (1..12) in year.
func DaysInMonth(year int64, month int) int64 {
	if IsLeapYear(year) {
		return monthStartsLeap[month] - monthStartsLeap[month-1]
	}
	return monthStarts[month] - monthStarts[month-1]
}

// LeapDaysBefore returns the number of leap days between year 1 and year.
// Negative years yield negative counts.
func LeapDaysBefore(year int64) int64 {
	if year == math.MinInt64 {
		// Shift one full cycle to keep year-1 representable.
		return LeapDaysBefore(year+400) - leapDaysPer400Years
	}
	y := year - 1
	return markmath.DivFloor(y, 4) - markmath.DivFloor(y, 100) + markmath.DivFloor(y, 400)
}

// YearStartDay returns the day mark of January 1st of year.
// Day mark 1 is January 1st of EpochYear.
func YearStartDay(year int64) (int64, bool) {
	zyear, ok := markmath.Sub(year, EpochYear)
	if !ok {
		return 0, false
	}
	days, ok := markmath.Mul(zyear, 365)
	if !ok {
		return 0, false
	}
	days, ok = markmath.Add(days, LeapDaysBefore(year)-epochLeapDays)
	if !ok {
		return 0, false
	}
	return markmath.Add(days, 1)
}

// MonthStartDay returns the day mark of the first day of month (1..12) in
// year. This mapping is exact; no rounding is involved.
func MonthStartDay(year int64, month int) (int64, bool) {
	start, ok := YearStartDay(year)
	if !ok {
		return 0, false
	}
	if IsLeapYear(year) {
		return markmath.Add(start, monthStartsLeap[month-1])
	}
	return markmath.Add(start, monthStarts[month-1])
}

// YearToMonth returns the month mark of January of year.
// Year EpochYear is month mark 1.
func YearToMonth(year int64) (int64, bool) {
	zyear, ok := markmath.Sub(year, EpochYear)
	if !ok {
		return 0, false
	}
	months, ok := markmath.Mul(zyear, 12)
	if !ok {
		return 0, false
	}
	return markmath.Add(months, 1)
}

// MonthToYear returns the year containing a month mark, rounded down.
// Month marks 1..12 are year EpochYear, 0 is the year before.
func MonthToYear(month int64) int64 {
	if month == math.MinInt64 {
		return MonthToYear(month+12) - 1
	}
	return markmath.DivFloor(month-1, 12) + EpochYear
}

// MonthToYearUp returns the smallest year whose first month is at or after
// the given month mark.
func MonthToYearUp(month int64) int64 {
	if month == math.MinInt64 {
		return MonthToYearUp(month+12) - 1
	}
	return markmath.DivCeil(month-1, 12) + EpochYear
}

// monthIndex returns the zero-based month-of-year of a month mark without
// risking overflow at the extremes.
func monthIndex(month int64) int {
	return int((month%12 + 11) % 12)
}

// MonthLength returns the number of days in the month designated by a
// month mark.
func MonthLength(month int64) int64 {
	return DaysInMonth(MonthToYear(month), monthIndex(month)+1)
}

// MonthToDay returns the day mark of the first day of a month mark.
// Month mark 1 is day mark 1; month mark 2 is day mark 32.
func MonthToDay(month int64) (int64, bool) {
	zmonth, ok := markmath.Sub(month, 1)
	if !ok {
		return 0, false
	}
	idx := monthIndex(month)
	zyear := markmath.DivFloor(zmonth, 12)
	// Months from March onward include the current year's leap day.
	leapRef := zyear
	if idx >= 2 {
		leapRef++
	}
	days, ok := markmath.Mul(zyear, 365)
	if !ok {
		return 0, false
	}
	days, ok = markmath.Add(days, monthStarts[idx])
	if !ok {
		return 0, false
	}
	days, ok = markmath.Add(days, LeapDaysBefore(leapRef+EpochYear)-epochLeapDays)
	if !ok {
		return 0, false
	}
	return markmath.Add(days, 1)
}

// zyearStart returns the epoch-relative day offset of January 1st of
// EpochYear+zyear. ok=false means the offset leaves the representable range.
func zyearStart(zyear int64) (int64, bool) {
	days, ok := markmath.Mul(zyear, 365)
	if !ok {
		return 0, false
	}
	return markmath.Add(days, LeapDaysBefore(zyear+EpochYear)-epochLeapDays)
}

// DayToYear returns the year containing a day mark and the zero-based day
// of that year. The year estimate from the mean cycle length lands on the
// right year or one past it, never short, so a single correction step
// suffices.
func DayToYear(day int64) (year, yearDay int64) {
	if day <= math.MinInt64+daysPer400Years {
		// Shift one full cycle so the year-start offset stays representable.
		y, yd := DayToYear(day + daysPer400Years)
		return y - 400, yd
	}
	zday := day - 1
	cycles := markmath.DivFloor(zday, daysPer400Years)
	zyear := markmath.DivFloor(zday-cycles*leapDaysPer400Years, 365)
	zstart, ok := zyearStart(zyear)
	if !ok || zstart > zday {
		// An unrepresentable start can only mean the estimate overshot.
		zyear--
		zstart, _ = zyearStart(zyear)
	}
	return zyear + EpochYear, zday - zstart
}

// DayToYearUp returns the smallest year whose first day is at or after the
// given day mark.
func DayToYearUp(day int64) int64 {
	year, yearDay := DayToYear(day)
	if yearDay == 0 {
		return year
	}
	return year + 1
}

// DayToMonth returns the month mark containing a day mark, rounded down.
func DayToMonth(day int64) int64 {
	year, yearDay := DayToYear(day)
	starts := &monthStarts
	if IsLeapYear(year) {
		starts = &monthStartsLeap
	}
	m := 1
	for m < 12 && yearDay >= starts[m] {
		m++
	}
	return (year-EpochYear)*12 + int64(m)
}

// DayToMonthUp returns the smallest month mark whose first day is at or
// after the given day mark.
func DayToMonthUp(day int64) int64 {
	year, yearDay := DayToYear(day)
	starts := &monthStarts
	if IsLeapYear(year) {
		starts = &monthStartsLeap
	}
	m := 1
	for m <= 12 && yearDay > starts[m-1] {
		m++
	}
	return (year-EpochYear)*12 + int64(m)
}
