// Package gamemath holds the integer and float helpers shared by the
// simulation systems. Pure functions, no engine imports.
package gamemath

// TruncateTowardZero converts a velocity component to the whole units it
// moves a position this tick. This is the only float-to-int rule used.
func TruncateTowardZero(v float64) int {
	return int(v)
}

// ClampMax caps v at max. No lower bound.
func ClampMax(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

// AbsInt returns |v|.
func AbsInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Midpoint returns the integer midpoint of [lo, hi], rounding toward zero.
func Midpoint(lo, hi int) int {
	return (lo + hi) / 2
}
