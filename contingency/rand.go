package contingency

import "github.com/VersusProject/similarity-3d/mathops"

// Pairs returns the number of unordered pairs among x items, x(x-1)/2.
func Pairs(x float64) (float64, error) {
	prev, err := mathops.Sub(x, 1)
	if err != nil {
		return 0, err
	}
	prod, err := mathops.Mul(x, prev)
	if err != nil {
		return 0, err
	}
	return mathops.Div(prod, 2)
}

// PairsVec returns Σ Pairs(v[k]).
func PairsVec(v []float64) (float64, error) {
	if err := mathops.CheckArgs("pairs", v); err != nil {
		return 0, err
	}
	var total float64
	for _, x := range v {
		p, err := Pairs(x)
		if err != nil {
			return 0, err
		}
		if total, err = mathops.Add(total, p); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// Agreement holds both indices and the pair counts they are derived from.
type Agreement struct {
	RandIndex         float64
	AdjustedRandIndex float64

	Nij float64 // pairs within each table cell
	A2  float64 // pairs within each first-labeling class
	B2  float64 // pairs within each second-labeling class
	N2  float64 // pairs among all positions
	N   float64 // labeled positions
}

// Analyze builds the contingency table of a and b and derives
//
//	RI  = 1 + (2·Nij - A2 - B2) / N2
//	ARI = (Nij - A2·B2/N2) / (½(A2+B2) - A2·B2/N2)
//
// With fewer than two positions N2 is zero and the division conventions of
// mathops apply.
func Analyze(a, b []float64) (Agreement, error) {
	t, err := NewTable(a, b)
	if err != nil {
		return Agreement{}, err
	}
	return t.Agreement()
}

// Agreement derives the Rand indices from the table.
func (t *Table) Agreement() (Agreement, error) {
	var (
		ag  Agreement
		err error
	)
	ag.N = t.Total()
	if ag.Nij, err = PairsVec(t.Cells()); err != nil {
		return Agreement{}, err
	}
	if ag.A2, err = PairsVec(t.RowSums()); err != nil {
		return Agreement{}, err
	}
	if ag.B2, err = PairsVec(t.ColSums()); err != nil {
		return Agreement{}, err
	}
	if ag.N2, err = Pairs(ag.N); err != nil {
		return Agreement{}, err
	}

	if ag.RandIndex, err = randIndex(ag); err != nil {
		return Agreement{}, err
	}
	if ag.AdjustedRandIndex, err = adjustedRandIndex(ag); err != nil {
		return Agreement{}, err
	}
	return ag, nil
}

func randIndex(ag Agreement) (float64, error) {
	twice, err := mathops.Mul(2, ag.Nij)
	if err != nil {
		return 0, err
	}
	disagree, err := mathops.Sub(twice, ag.A2)
	if err != nil {
		return 0, err
	}
	if disagree, err = mathops.Sub(disagree, ag.B2); err != nil {
		return 0, err
	}
	ratio, err := mathops.Div(disagree, ag.N2)
	if err != nil {
		return 0, err
	}
	return mathops.Add(1, ratio)
}

func adjustedRandIndex(ag Agreement) (float64, error) {
	prod, err := mathops.Mul(ag.A2, ag.B2)
	if err != nil {
		return 0, err
	}
	expected, err := mathops.Div(prod, ag.N2)
	if err != nil {
		return 0, err
	}
	index, err := mathops.Sub(ag.Nij, expected)
	if err != nil {
		return 0, err
	}
	both, err := mathops.Add(ag.A2, ag.B2)
	if err != nil {
		return 0, err
	}
	maxIndex, err := mathops.Mul(0.5, both)
	if err != nil {
		return 0, err
	}
	span, err := mathops.Sub(maxIndex, expected)
	if err != nil {
		return 0, err
	}
	return mathops.Div(index, span)
}

// RandIndex returns only the Rand Index of a and b.
func RandIndex(a, b []float64) (float64, error) {
	ag, err := Analyze(a, b)
	if err != nil {
		return 0, err
	}
	return ag.RandIndex, nil
}

// AdjustedRandIndex returns only the Adjusted Rand Index of a and b.
func AdjustedRandIndex(a, b []float64) (float64, error) {
	ag, err := Analyze(a, b)
	if err != nil {
		return 0, err
	}
	return ag.AdjustedRandIndex, nil
}
