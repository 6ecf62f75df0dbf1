// Package timelane converts marks between lanes of time.
//
// A lane is a time granularity (nanosecond, second, day, year, ...) with
// its own sequentially numbered instants, called marks. Mark values are
// signed integers. Scale converts a mark from one lane to another: toward
// finer lanes the conversion selects the first or last contained instant,
// toward coarser lanes it rounds down or up per the requested RoundingMode.
//
// EPOCH:
//
// The second, minute, hour and subsecond lanes place mark 0 at
// 2000-01-01T00:00:00 UTC. Day mark 1 is 2000-01-01, month mark 1 is
// January 2000, and year marks are astronomical year numbers (year 0 is
// 1 BC, year -1 is 2 BC). For instance, mark 1 in the month lane is mark 1
// in the day lane, and mark 2 in the month lane is mark 32 in the day lane.
//
// CALENDAR RULES:
//
//   - Leap years follow the proleptic Gregorian calendar for all years,
//     including negative ones; year 0 (1 BC) is a leap year.
//   - Minutes containing an inserted leap second have 61 seconds. The leap
//     second table is fixed at build time; results past the 2017 table end
//     extrapolate "no further leap seconds" and will be wrong if the IERS
//     ever declares a new one.
//   - Marks model UTC. Systems on GPS or TAI time do not observe leap
//     seconds and need an offset before using this package.
//
// All operations are pure, deterministic and safe for unsynchronized
// concurrent use; the only failure mode is *OverflowError when a result or
// intermediate value leaves the int64 range.
package timelane
