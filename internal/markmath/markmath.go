// Package markmath provides overflow-checked int64 arithmetic and
// floor/ceiling division for lane mark computations.
//
// Go's native integer operators wrap silently and `/` truncates toward
// zero, both of which would corrupt mark monotonicity for negative values
// or wide lane spans. Every mark computation in the module goes through
// these helpers instead.
package markmath

import "math"

// DivFloor divides a by b, rounding toward negative infinity.
// b must be positive; all lane ratios are.
func DivFloor(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// DivCeil divides a by b, rounding toward positive infinity.
// b must be positive.
func DivCeil(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

// Add returns a+b and reports whether the sum is representable.
func Add(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// Sub returns a-b and reports whether the difference is representable.
func Sub(a, b int64) (int64, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}
	return d, true
}

// Mul returns a*b and reports whether the product is representable.
func Mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		// MinInt64 only survives multiplication by one.
		if a == 1 || b == 1 {
			return a * b, true
		}
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}
