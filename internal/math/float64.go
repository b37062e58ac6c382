// Package math holds the numeric constants and classification helpers shared
// by the similarity core.
package math

import "math"

const (
	// Epsilon is the magnitude at or below which an operand counts as zero
	// for the 0/0 and x/0 conventions.
	Epsilon = math.SmallestNonzeroFloat64

	// Huge stands in for +Inf when a division or logarithm diverges.
	Huge = math.MaxFloat64

	// NormTolerance is how far a distribution's total may sit from 1 and
	// still be treated as a normalized histogram.
	NormTolerance = 1e-7
)

// IsZero reports whether |x| is within Epsilon of zero.
func IsZero(x float64) bool {
	return math.Abs(x) <= Epsilon
}

// IsHuge reports whether x has reached the divergence sentinel.
func IsHuge(x float64) bool {
	return x >= Huge
}

// ClampInt clamps v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
