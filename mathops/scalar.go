// Package mathops provides the scalar and elementwise arithmetic that every
// similarity measure is built from.
//
// All operations validate their operands and their result: a NaN reports
// ErrHWIndependence and an infinity reports ErrSingularity. Division and the
// fused a·ln(b) operator define their own conventions near zero:
//
//	Div(0, 0)   = 0
//	Div(x, 0)   = Huge          (|x| > Epsilon)
//	ALnB(0, 0)  = 0
//	ALnB(x, 0)  = -Huge         (|x| > Epsilon)
//
// Those outcomes are normal results, not errors.
package mathops

import (
	"math"

	fm "github.com/VersusProject/similarity-3d/internal/math"
)

const (
	// Epsilon is the zero threshold used by Div and ALnB.
	Epsilon = fm.Epsilon

	// Huge is the finite sentinel standing in for +Inf.
	Huge = fm.Huge
)

func binary(op string, a, b, c float64) (float64, error) {
	if err := checkPair(op, a, b); err != nil {
		return 0, err
	}
	if err := CheckResult(op, c); err != nil {
		return 0, err
	}
	return c, nil
}

func unary(op string, a, c float64) (float64, error) {
	if err := CheckValue(op, ArgFirst, a); err != nil {
		return 0, err
	}
	if err := CheckResult(op, c); err != nil {
		return 0, err
	}
	return c, nil
}

// Add returns a + b.
func Add(a, b float64) (float64, error) {
	return binary("add", a, b, a+b)
}

// Sub returns a - b.
func Sub(a, b float64) (float64, error) {
	return binary("sub", a, b, a-b)
}

// Mul returns a * b.
func Mul(a, b float64) (float64, error) {
	return binary("mult", a, b, a*b)
}

// Div returns a / b, with 0/0 = 0 and x/0 = Huge.
func Div(a, b float64) (float64, error) {
	if err := checkPair("div", a, b); err != nil {
		return 0, err
	}
	if fm.IsZero(b) {
		if fm.IsZero(a) {
			return 0, nil
		}
		return Huge, nil
	}
	c := a / b
	if err := CheckResult("div", c); err != nil {
		return 0, err
	}
	return c, nil
}

// Pow returns a raised to b.
func Pow(a, b float64) (float64, error) {
	return binary("pow", a, b, math.Pow(a, b))
}

// Min returns the smaller of a and b.
func Min(a, b float64) (float64, error) {
	c := b
	if a < b {
		c = a
	}
	return binary("min", a, b, c)
}

// Max returns the larger of a and b.
func Max(a, b float64) (float64, error) {
	c := b
	if a > b {
		c = a
	}
	return binary("max", a, b, c)
}

// Abs returns |a|.
func Abs(a float64) (float64, error) {
	return unary("abs", a, math.Abs(a))
}

// Square returns a².
func Square(a float64) (float64, error) {
	return unary("square", a, a*a)
}

// Cube returns a³.
func Cube(a float64) (float64, error) {
	return unary("cube", a, a*a*a)
}

// Sqrt returns the square root of a. A negative a yields ErrHWIndependence.
func Sqrt(a float64) (float64, error) {
	return unary("sqrt", a, math.Sqrt(a))
}

// Cbrt returns the cube root of a.
func Cbrt(a float64) (float64, error) {
	return unary("cbrt", a, math.Cbrt(a))
}

// Reciprocal returns 1/a under the Div conventions.
func Reciprocal(a float64) (float64, error) {
	if err := CheckValue("reciprocal", ArgFirst, a); err != nil {
		return 0, err
	}
	return Div(1, a)
}

// Ln returns the natural logarithm of a. ln(0) and ln of a negative number
// are reported as failures rather than propagated.
func Ln(a float64) (float64, error) {
	return unary("ln", a, math.Log(a))
}

// ALnB returns a·ln(b).
//
//	|a|, |b| <= Epsilon     -> 0
//	|b| <= Epsilon          -> -Huge
//	a or b already Huge     -> Huge
func ALnB(a, b float64) (float64, error) {
	const op = "aLnB"
	if err := checkPair(op, a, b); err != nil {
		return 0, err
	}
	switch {
	case fm.IsZero(a) && fm.IsZero(b):
		return 0, nil
	case fm.IsZero(b):
		return -Huge, nil
	case fm.IsHuge(a) || fm.IsHuge(b):
		return Huge, nil
	}
	l, err := Ln(b)
	if err != nil {
		return 0, err
	}
	c := a * l
	if err := CheckResult(op, c); err != nil {
		return 0, err
	}
	return c, nil
}
