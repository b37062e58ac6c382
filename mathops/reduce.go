package mathops

import (
	"math"

	fm "github.com/VersusProject/similarity-3d/internal/math"
)

// Sum adds the elements of a. It returns Huge as soon as an element has
// reached Huge so that divergent terms never overflow the accumulator.
func Sum(a []float64) (float64, error) {
	if err := CheckArgs("sum", a); err != nil {
		return 0, err
	}
	var s float64
	for _, x := range a {
		if fm.IsHuge(x) {
			return Huge, nil
		}
		var err error
		if s, err = Add(x, s); err != nil {
			return 0, err
		}
	}
	return s, nil
}

// Product multiplies the elements of a. The product of an empty vector is 1.
func Product(a []float64) (float64, error) {
	if err := CheckArgs("mult", a); err != nil {
		return 0, err
	}
	p := 1.0
	for _, x := range a {
		var err error
		if p, err = Mul(x, p); err != nil {
			return 0, err
		}
	}
	return p, nil
}

// MinOf returns the smallest element of a, 0 for an empty vector, or Huge if
// any element has reached Huge.
func MinOf(a []float64) (float64, error) {
	return fold("min", a, Min)
}

// MaxOf returns the largest element of a, 0 for an empty vector, or Huge if
// any element has reached Huge.
func MaxOf(a []float64) (float64, error) {
	return fold("max", a, Max)
}

func fold(op string, a []float64, f func(x, y float64) (float64, error)) (float64, error) {
	if err := CheckArgs(op, a); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, nil
	}
	acc := a[0]
	for _, x := range a {
		if fm.IsHuge(x) {
			return Huge, nil
		}
		var err error
		if acc, err = f(x, acc); err != nil {
			return 0, err
		}
	}
	return acc, nil
}

// IsNormalized reports whether the elements of a sum to 1 within 1e-7.
func IsNormalized(a []float64) (bool, error) {
	s, err := Sum(a)
	if err != nil {
		return false, err
	}
	return math.Abs(s-1) < fm.NormTolerance, nil
}

// Normalize divides every element by the total of the non-zero elements.
// An all-zero vector stays all zero.
func Normalize(a []float64) ([]float64, error) {
	const op = "normalizeHistogram"
	if err := CheckArgs(op, a); err != nil {
		return nil, err
	}
	var total float64
	for _, x := range a {
		if x != 0 {
			total += x
		}
	}
	if err := CheckResult(op, total); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i, x := range a {
		v, err := Div(x, total)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
