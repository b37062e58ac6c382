// Package pixelset derives set-overlap measures from thresholded voxel arrays.
//
// Masks are flattened arrays of 0 and 1. Inputs follow a truthy convention:
// any value greater than zero is set.
package pixelset

import "github.com/VersusProject/similarity-3d/mathops"

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func threshold(op string, a []float64, value float64, keep func(x float64) bool) ([]float64, error) {
	if err := mathops.CheckArgs(op, a); err != nil {
		return nil, err
	}
	if err := mathops.CheckValue(op, mathops.ArgSecond, value); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i, x := range a {
		out[i] = indicator(keep(x))
	}
	return out, nil
}

// GreaterThan marks the elements strictly greater than value.
func GreaterThan(a []float64, value float64) ([]float64, error) {
	return threshold("greaterThan", a, value, func(x float64) bool { return x > value })
}

// EqualTo marks the elements exactly equal to value.
func EqualTo(a []float64, value float64) ([]float64, error) {
	return threshold("equalTo", a, value, func(x float64) bool { return x == value })
}

// Logical marks the elements greater than zero.
func Logical(a []float64) ([]float64, error) {
	return threshold("logical", a, 0, func(x float64) bool { return x > 0 })
}

func combine(op string, a, b []float64, f func(x, y bool) bool) ([]float64, error) {
	if err := mathops.CheckArgs(op, a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = indicator(f(a[i] > 0, b[i] > 0))
	}
	return out, nil
}

// And marks the positions set in both a and b.
func And(a, b []float64) ([]float64, error) {
	return combine("and", a, b, func(x, y bool) bool { return x && y })
}

// Or marks the positions set in a or b.
func Or(a, b []float64) ([]float64, error) {
	return combine("or", a, b, func(x, y bool) bool { return x || y })
}

// Not marks the positions not set in a.
func Not(a []float64) ([]float64, error) {
	return threshold("not", a, 0, func(x float64) bool { return x <= 0 })
}

// Count returns the number of set positions in a.
func Count(a []float64) (float64, error) {
	m, err := Logical(a)
	if err != nil {
		return 0, err
	}
	return mathops.Sum(m)
}
