package timelane

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScale(t *testing.T, m Mark, from, to Lane, mode RoundingMode) Mark {
	t.Helper()
	got, err := Scale(m, from, to, mode)
	require.NoError(t, err, "scale %d from %s to %s %s", int64(m), from, to, mode)
	return got
}

func TestScale_Identity(t *testing.T) {
	for _, lane := range Lanes() {
		for _, mode := range []RoundingMode{RoundDown, RoundUp} {
			assert.Equal(t, Mark(42), mustScale(t, 42, lane, lane, mode))
			assert.Equal(t, Mark(math.MinInt64), mustScale(t, math.MinInt64, lane, lane, mode))
		}
	}
}

func TestScale_MonthToDay(t *testing.T) {
	assert.Equal(t, Mark(1), mustScale(t, 1, Month, Day, RoundDown))
	assert.Equal(t, Mark(32), mustScale(t, 2, Month, Day, RoundDown))
	assert.Equal(t, Mark(-30), mustScale(t, 0, Month, Day, RoundDown))

	// RoundUp selects the last contained day.
	assert.Equal(t, Mark(31), mustScale(t, 1, Month, Day, RoundUp))
	assert.Equal(t, Mark(60), mustScale(t, 2, Month, Day, RoundUp)) // February 2000 has 29 days
}

func TestScale_DayToMonth(t *testing.T) {
	assert.Equal(t, Mark(1), mustScale(t, 1, Day, Month, RoundDown))
	assert.Equal(t, Mark(1), mustScale(t, 31, Day, Month, RoundDown))
	assert.Equal(t, Mark(2), mustScale(t, 32, Day, Month, RoundDown))
	assert.Equal(t, Mark(0), mustScale(t, 0, Day, Month, RoundDown))

	assert.Equal(t, Mark(1), mustScale(t, 1, Day, Month, RoundUp))
	assert.Equal(t, Mark(2), mustScale(t, 2, Day, Month, RoundUp))
	assert.Equal(t, Mark(2), mustScale(t, 32, Day, Month, RoundUp))
}

func TestScale_HourDay(t *testing.T) {
	assert.Equal(t, Mark(-24), mustScale(t, 0, Day, Hour, RoundDown))
	assert.Equal(t, Mark(0), mustScale(t, 1, Day, Hour, RoundDown))
	assert.Equal(t, Mark(24), mustScale(t, 2, Day, Hour, RoundDown))

	for hour := Mark(0); hour < 24; hour++ {
		assert.Equal(t, Mark(1), mustScale(t, hour, Hour, Day, RoundDown), "hour %d", hour)
	}
	assert.Equal(t, Mark(2), mustScale(t, 24, Hour, Day, RoundDown))
	assert.Equal(t, Mark(0), mustScale(t, -1, Hour, Day, RoundDown))
	assert.Equal(t, Mark(1), mustScale(t, -23, Hour, Day, RoundUp))
	assert.Equal(t, Mark(1), mustScale(t, 0, Hour, Day, RoundUp))
	assert.Equal(t, Mark(2), mustScale(t, 23, Hour, Day, RoundUp))
	assert.Equal(t, Mark(2), mustScale(t, 24, Hour, Day, RoundUp))
}

func TestScale_SubsecondLanes(t *testing.T) {
	assert.Equal(t, Mark(1_000_000_000), mustScale(t, 1, Second, Nanosecond, RoundDown))
	assert.Equal(t, Mark(1_999_999_999), mustScale(t, 1, Second, Nanosecond, RoundUp))
	assert.Equal(t, Mark(1_000_000), mustScale(t, 1, Second, Microsecond, RoundDown))
	assert.Equal(t, Mark(1_000), mustScale(t, 1, Second, Millisecond, RoundDown))

	assert.Equal(t, Mark(0), mustScale(t, 999_999_999, Nanosecond, Second, RoundDown))
	assert.Equal(t, Mark(1), mustScale(t, 1_000_000_000, Nanosecond, Second, RoundDown))
	assert.Equal(t, Mark(1), mustScale(t, 1, Nanosecond, Second, RoundUp))
	assert.Equal(t, Mark(-1), mustScale(t, -1, Nanosecond, Second, RoundDown))
	assert.Equal(t, Mark(0), mustScale(t, -1, Nanosecond, Second, RoundUp))

	assert.Equal(t, Mark(-9_223_372_037), mustScale(t, math.MinInt64, Nanosecond, Second, RoundDown))
	assert.Equal(t, Mark(9_223_372_036), mustScale(t, math.MaxInt64, Nanosecond, Second, RoundDown))
}

func TestScale_SecondMinute_LeapAware(t *testing.T) {
	assert.Equal(t, Mark(60), mustScale(t, 1, Minute, Second, RoundDown))
	assert.Equal(t, Mark(-60), mustScale(t, -1, Minute, Second, RoundDown))
	assert.Equal(t, Mark(1), mustScale(t, 60, Second, Minute, RoundDown))
	assert.Equal(t, Mark(-1), mustScale(t, -1, Second, Minute, RoundDown))

	// 2005-12-31 23:59 UTC is minute 3156479 and contains a leap second.
	assert.Equal(t, Mark(189388740), mustScale(t, 3156479, Minute, Second, RoundDown))
	assert.Equal(t, Mark(189388800), mustScale(t, 3156479, Minute, Second, RoundUp))
	assert.Equal(t, Mark(189388801), mustScale(t, 3156480, Minute, Second, RoundDown))
	assert.Equal(t, Mark(3156479), mustScale(t, 189388800, Second, Minute, RoundDown))
	assert.Equal(t, Mark(3156480), mustScale(t, 189388800, Second, Minute, RoundUp))
	assert.Equal(t, Mark(3156479), mustScale(t, 189388741, Second, Minute, RoundDown))
	assert.Equal(t, Mark(3156480), mustScale(t, 189388741, Second, Minute, RoundUp))
}

func TestScale_SecondYearRoundTrip(t *testing.T) {
	s := Mark(123456) // within year 2000

	down := mustScale(t, s, Second, Year, RoundDown)
	assert.Equal(t, Mark(2000), down)
	assert.Equal(t, Mark(0), mustScale(t, down, Year, Second, RoundDown),
		"rounding down twice lands on the first second of the year")

	up := mustScale(t, s, Second, Year, RoundUp)
	assert.Equal(t, Mark(2001), up)
	assert.Equal(t, Mark(63158399), mustScale(t, up, Year, Second, RoundUp),
		"rounding up twice lands on the last second of the year")
}

func TestScale_YearSecondBounds(t *testing.T) {
	// 2000 is a leap year of 366 days and contains no leap second.
	assert.Equal(t, Mark(0), mustScale(t, 2000, Year, Second, RoundDown))
	assert.Equal(t, Mark(31622399), mustScale(t, 2000, Year, Second, RoundUp))
	assert.Equal(t, Mark(31622400), mustScale(t, 2001, Year, Second, RoundDown))

	// 2005 ends in a leap second, so 2006 starts one mark later than a
	// leap-second-blind computation would place it.
	start2005 := mustScale(t, 2005, Year, Second, RoundDown)
	end2005 := mustScale(t, 2005, Year, Second, RoundUp)
	assert.Equal(t, Mark(189388800), end2005)
	assert.Equal(t, int64(365*86400), int64(end2005-start2005))
	assert.Equal(t, Mark(189388801), mustScale(t, 2006, Year, Second, RoundDown))
}

func TestScale_FloorInvariant_AdjacentPairs(t *testing.T) {
	marks := []Mark{-100000, -4001, -400, -32, -31, -30, -2, -1, 0, 1, 2, 29, 30, 31, 32,
		59, 60, 61, 365, 366, 1000, 17543, 1052639, 63158399, 189388740, 189388800, 189388801}

	for fine := Nanosecond; fine < Year; fine++ {
		for _, m := range marks {
			down, err := Compress(m, fine, RoundDown)
			require.NoError(t, err)

			first, err := Expand(down, fine+1)
			require.NoError(t, err)
			assert.LessOrEqual(t, int64(first), int64(m), "lane %s mark %d", fine, m)

			next, err := Expand(down+1, fine+1)
			require.NoError(t, err)
			assert.Greater(t, int64(next), int64(m), "lane %s mark %d", fine, m)
		}
	}
}

func TestScale_CeilingInvariant_AdjacentPairs(t *testing.T) {
	marks := []Mark{-100000, -4001, -31, -1, 0, 1, 2, 31, 32, 59, 60, 61, 366,
		1052639, 189388740, 189388741, 189388800, 189388801,
		284083142, 394415943, 489023944, 536543945}

	for fine := Nanosecond; fine < Year; fine++ {
		for _, m := range marks {
			up, err := Compress(m, fine, RoundUp)
			require.NoError(t, err)

			first, err := Expand(up, fine+1)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, int64(first), int64(m), "lane %s mark %d", fine, m)

			prev, err := Expand(up-1, fine+1)
			require.NoError(t, err)
			assert.Less(t, int64(prev), int64(m), "lane %s mark %d", fine, m)
		}
	}
}

func TestScale_CompressionMonotonic(t *testing.T) {
	for fine := Nanosecond; fine < Year; fine++ {
		for _, mode := range []RoundingMode{RoundDown, RoundUp} {
			prev := Mark(math.MinInt64)
			for m := Mark(-3000); m <= 3000; m += 7 {
				got, err := Compress(m, fine, mode)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, int64(got), int64(prev), "lane %s mark %d %s", fine, m, mode)
				prev = got
			}
		}
	}
}

// Rounding at every hop must match rounding once at the coarse end, even
// across the irregular minute/month/year boundaries.
func TestScale_CompositionLaw(t *testing.T) {
	seconds := []Mark{-14464801 * 60, -1000000, -61, -60, -1, 0, 1, 59, 60, 123456,
		31622399, 31622400, 63158399, 189388740, 189388741, 189388799, 189388800,
		189388801, 189388860, 284083142, 394415943, 489023944, 536543945}

	for _, mode := range []RoundingMode{RoundDown, RoundUp} {
		for mid := Minute; mid < Year; mid++ {
			for _, s := range seconds {
				direct := mustScale(t, s, Second, Year, mode)
				via := mustScale(t, mustScale(t, s, Second, mid, mode), mid, Year, mode)
				assert.Equal(t, direct, via, "second %d via %s %s", int64(s), mid, mode)
			}
		}
	}
}

func TestScale_CompositionLaw_Expansion(t *testing.T) {
	years := []Mark{1999, 2000, 2001, 2005, 2006, -1, 0, 400}

	for _, mode := range []RoundingMode{RoundDown, RoundUp} {
		for mid := Month; mid > Second; mid-- {
			for _, y := range years {
				direct := mustScale(t, y, Year, Second, mode)
				via := mustScale(t, mustScale(t, y, Year, mid, mode), mid, Second, mode)
				assert.Equal(t, direct, via, "year %d via %s %s", int64(y), mid, mode)
			}
		}
	}
}

func TestScale_ExtremeMarks(t *testing.T) {
	assert.Equal(t, Mark(math.MinInt64+9), mustScale(t, -768614336404562650, Year, Month, RoundDown))
	assert.Equal(t, Mark(math.MaxInt64-6), mustScale(t, 768614336404566650, Year, Month, RoundDown))
	assert.Equal(t, Mark(-768614336404562651), mustScale(t, math.MinInt64, Month, Year, RoundDown))
	assert.Equal(t, Mark(768614336404566650), mustScale(t, math.MaxInt64, Month, Year, RoundDown))
	assert.Equal(t, Mark(-153722867280912930), mustScale(t, math.MinInt64, Second, Minute, RoundDown))
	assert.Equal(t, Mark(153722867280912931), mustScale(t, math.MaxInt64, Second, Minute, RoundUp))
}

func TestScale_Overflow(t *testing.T) {
	_, err := Scale(math.MaxInt64, Year, Nanosecond, RoundDown)
	require.Error(t, err)
	assert.True(t, IsOverflow(err))

	var oe *OverflowError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "expand", oe.Op)
	assert.Equal(t, Year, oe.From)
	assert.Equal(t, Month, oe.To)
	assert.Equal(t, Mark(math.MaxInt64), oe.Mark)

	_, err = Scale(math.MinInt64, Year, Month, RoundDown)
	assert.True(t, IsOverflow(err))

	// 9223372037 seconds of nanoseconds exceed the mark range.
	_, err = Scale(9223372037, Second, Nanosecond, RoundDown)
	assert.True(t, IsOverflow(err))
	_, err = Scale(math.MaxInt64, Minute, Second, RoundDown)
	assert.True(t, IsOverflow(err))

	// Compression never overflows, even from the extremes.
	got, err := Scale(math.MaxInt64, Nanosecond, Year, RoundUp)
	require.NoError(t, err)
	assert.Equal(t, Mark(2293), got)
}

func TestScale_NanosecondRangeCoversSurroundingCenturies(t *testing.T) {
	// With 64-bit marks the nanosecond lane spans roughly 1708..2292.
	for _, year := range []Mark{1709, 2000, 2291} {
		first := mustScale(t, year, Year, Nanosecond, RoundDown)
		last := mustScale(t, year, Year, Nanosecond, RoundUp)
		assert.Less(t, int64(first), int64(last), "year %d", year)
		assert.Equal(t, year, mustScale(t, first, Nanosecond, Year, RoundDown), "year %d", year)
		assert.Equal(t, year, mustScale(t, last, Nanosecond, Year, RoundDown), "year %d", year)
	}

	_, err := Scale(1600, Year, Nanosecond, RoundDown)
	assert.True(t, IsOverflow(err))
}

func TestExpandCompress_SingleHopMatchesScale(t *testing.T) {
	for _, m := range []Mark{-61, -1, 0, 1, 59, 60, 3156479} {
		viaScale := mustScale(t, m, Minute, Second, RoundDown)
		direct, err := Expand(m, Minute)
		require.NoError(t, err)
		assert.Equal(t, viaScale, direct)

		for _, mode := range []RoundingMode{RoundDown, RoundUp} {
			viaScale = mustScale(t, m, Minute, Hour, mode)
			direct, err = Compress(m, Minute, mode)
			require.NoError(t, err)
			assert.Equal(t, viaScale, direct)
		}
	}
}

func TestExpandCompress_PanicOutsideLaneOrder(t *testing.T) {
	assert.Panics(t, func() { _, _ = Expand(0, Nanosecond) })
	assert.Panics(t, func() { _, _ = Compress(0, Year, RoundDown) })
}
