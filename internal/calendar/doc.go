// Package calendar implements proleptic Gregorian calendar arithmetic on
// lane marks.
//
// Years use astronomical numbering: year 0 is 1 BC, year -1 is 2 BC, and
// so on. The leap year rule (divisible by 4, except centuries not divisible
// by 400) extends to all years, so year 0 is a leap year.
//
// Mark conventions follow the module epoch: day mark 1 is 2000-01-01, month
// mark 1 is January 2000, and year marks are the astronomical year numbers
// themselves.
//
// All functions are pure and loop at most a small constant number of times
// (12 for month scans, one correction step for the day-to-year inversion).
// Functions that can leave the representable mark range report ok=false
// instead of wrapping.
package calendar
