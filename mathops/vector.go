package mathops

func zip(op string, a, b []float64, f func(x, y float64) (float64, error)) ([]float64, error) {
	if err := CheckArgs(op, a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		v, err := f(a[i], b[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func each(op string, a []float64, f func(x float64) (float64, error)) ([]float64, error) {
	if err := CheckArgs(op, a); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		v, err := f(a[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// AddVec returns a[i] + b[i].
func AddVec(a, b []float64) ([]float64, error) { return zip("add", a, b, Add) }

// SubVec returns a[i] - b[i].
func SubVec(a, b []float64) ([]float64, error) { return zip("sub", a, b, Sub) }

// MulVec returns a[i] * b[i].
func MulVec(a, b []float64) ([]float64, error) { return zip("mult", a, b, Mul) }

// DivVec returns Div(a[i], b[i]).
func DivVec(a, b []float64) ([]float64, error) { return zip("div", a, b, Div) }

// PowVec returns a[i] raised to b[i].
func PowVec(a, b []float64) ([]float64, error) { return zip("pow", a, b, Pow) }

// MinVec returns the elementwise minimum.
func MinVec(a, b []float64) ([]float64, error) { return zip("min", a, b, Min) }

// MaxVec returns the elementwise maximum.
func MaxVec(a, b []float64) ([]float64, error) { return zip("max", a, b, Max) }

// ALnBVec returns ALnB(a[i], b[i]).
func ALnBVec(a, b []float64) ([]float64, error) { return zip("aLnB", a, b, ALnB) }

// AbsVec returns |a[i]|.
func AbsVec(a []float64) ([]float64, error) { return each("abs", a, Abs) }

// SquareVec returns a[i]².
func SquareVec(a []float64) ([]float64, error) { return each("square", a, Square) }

// CubeVec returns a[i]³.
func CubeVec(a []float64) ([]float64, error) { return each("cube", a, Cube) }

// SqrtVec returns the elementwise square root.
func SqrtVec(a []float64) ([]float64, error) { return each("sqrt", a, Sqrt) }

// CbrtVec returns the elementwise cube root.
func CbrtVec(a []float64) ([]float64, error) { return each("cbrt", a, Cbrt) }

// ReciprocalVec returns Reciprocal(a[i]).
func ReciprocalVec(a []float64) ([]float64, error) { return each("reciprocal", a, Reciprocal) }

// LnVec returns ln(a[i]).
func LnVec(a []float64) ([]float64, error) { return each("ln", a, Ln) }

// Scale returns c * a[i].
func Scale(c float64, a []float64) ([]float64, error) {
	if err := CheckValue("mult", ArgFirst, c); err != nil {
		return nil, err
	}
	return each("mult", a, func(x float64) (float64, error) { return Mul(c, x) })
}

// Shift returns a[i] - c.
func Shift(a []float64, c float64) ([]float64, error) {
	if err := CheckValue("sub", ArgSecond, c); err != nil {
		return nil, err
	}
	return each("sub", a, func(x float64) (float64, error) { return Sub(x, c) })
}

// Const returns a vector of n copies of v.
func Const(n int, v float64) ([]float64, error) {
	if n < 0 {
		return nil, NewError("mkConstArray", ArgFirst, ErrShape, "negative length")
	}
	if err := CheckValue("mkConstArray", ArgSecond, v); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out, nil
}
