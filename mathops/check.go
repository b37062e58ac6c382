package mathops

import (
	"fmt"
	"math"
)

// classify returns the failure detail and kind for a non-finite value.
func classify(x float64) (string, error) {
	switch {
	case math.IsNaN(x):
		return "NaN indeterminate value", ErrHWIndependence
	case math.IsInf(x, 1):
		return "POSITIVE_INFINITY value", ErrSingularity
	case math.IsInf(x, -1):
		return "NEGATIVE_INFINITY value", ErrSingularity
	}
	return "", nil
}

// CheckValue rejects a NaN or infinite scalar.
func CheckValue(op string, arg Arg, x float64) error {
	if detail, kind := classify(x); kind != nil {
		return NewError(op, arg, kind, detail)
	}
	return nil
}

// CheckResult rejects a NaN or infinite result.
func CheckResult(op string, x float64) error {
	return CheckValue(op, ArgResult, x)
}

// CheckSlice rejects a nil slice or one holding a NaN or infinite element.
func CheckSlice(op string, arg Arg, v []float64) error {
	if v == nil {
		return NewError(op, arg, ErrSingularity, "null value")
	}
	for i, x := range v {
		if detail, kind := classify(x); kind != nil {
			return NewError(op, arg, kind, fmt.Sprintf("%s at index %d", detail, i))
		}
	}
	return nil
}

// CheckArgs validates every operand and requires them all to share the
// length of the first.
func CheckArgs(op string, vs ...[]float64) error {
	for i, v := range vs {
		arg := Arg(i + 1)
		if err := CheckSlice(op, arg, v); err != nil {
			return err
		}
		if i > 0 && len(v) != len(vs[0]) {
			return NewError(op, arg, ErrShape,
				fmt.Sprintf("length %d differs from first argument length %d", len(v), len(vs[0])))
		}
	}
	return nil
}

func checkPair(op string, a, b float64) error {
	if err := CheckValue(op, ArgFirst, a); err != nil {
		return err
	}
	return CheckValue(op, ArgSecond, b)
}
