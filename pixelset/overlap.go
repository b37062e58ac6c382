package pixelset

import "github.com/VersusProject/similarity-3d/mathops"

// overlapUnion returns |A∩B| and |A∪B| of the present masks of a and b.
// The overlap is where the summed masks equal 2 and the union where the sum
// is positive.
func overlapUnion(op string, a, b []float64) (overlap, union float64, err error) {
	if err := mathops.CheckArgs(op, a, b); err != nil {
		return 0, 0, err
	}
	ma, err := Logical(a)
	if err != nil {
		return 0, 0, err
	}
	mb, err := Logical(b)
	if err != nil {
		return 0, 0, err
	}
	sum, err := mathops.AddVec(ma, mb)
	if err != nil {
		return 0, 0, err
	}

	both, err := EqualTo(sum, 2)
	if err != nil {
		return 0, 0, err
	}
	either, err := GreaterThan(sum, 0)
	if err != nil {
		return 0, 0, err
	}
	if overlap, err = mathops.Sum(both); err != nil {
		return 0, 0, err
	}
	if union, err = mathops.Sum(either); err != nil {
		return 0, 0, err
	}
	return overlap, union, nil
}

// Dice returns 2|A∩B| / (|A| + |B|), computed as 2·overlap / (union + overlap).
// Two empty masks score 0.
func Dice(a, b []float64) (float64, error) {
	overlap, union, err := overlapUnion("dice", a, b)
	if err != nil {
		return 0, err
	}
	num, err := mathops.Mul(2, overlap)
	if err != nil {
		return 0, err
	}
	den, err := mathops.Add(union, overlap)
	if err != nil {
		return 0, err
	}
	return mathops.Div(num, den)
}

// Jaccard returns |A∩B| / |A∪B|. Two empty masks score 0.
func Jaccard(a, b []float64) (float64, error) {
	overlap, union, err := overlapUnion("jaccard", a, b)
	if err != nil {
		return 0, err
	}
	return mathops.Div(overlap, union)
}
