// Package contingency measures agreement between two labelings of the same
// positions through a dense contingency table, reporting the Rand Index and
// the chance-corrected Adjusted Rand Index.
package contingency

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/VersusProject/similarity-3d/mathops"
)

const op = "contingency"

// MaxCells bounds the dense table size, rows times columns. A labeling whose
// largest label would exceed it is rejected with a shape error.
const MaxCells = 1 << 24

// Table cross-tabulates two labelings: At(i, j) counts the positions where
// the first labeling holds i and the second holds j. The table is dense over
// [0, max label] in each dimension.
type Table struct {
	counts *mat.Dense
}

// NewTable builds the contingency table of two equal-length label arrays.
// Labels are truncated to integers; a negative label is rejected.
func NewTable(a, b []float64) (*Table, error) {
	if err := mathops.CheckArgs(op, a, b); err != nil {
		return nil, err
	}
	if len(a) == 0 {
		return nil, mathops.NewError(op, mathops.ArgFirst, mathops.ErrShape, "empty labeling")
	}

	rows, err := labelSpan(mathops.ArgFirst, a)
	if err != nil {
		return nil, err
	}
	cols, err := labelSpan(mathops.ArgSecond, b)
	if err != nil {
		return nil, err
	}

	if rows*cols > MaxCells {
		return nil, mathops.NewError(op, mathops.ArgSecond, mathops.ErrShape,
			fmt.Sprintf("table of %dx%d labels exceeds %d cells", rows, cols, MaxCells))
	}

	counts := mat.NewDense(rows, cols, nil)
	for k := range a {
		i, j := int(a[k]), int(b[k])
		counts.Set(i, j, counts.At(i, j)+1)
	}
	return &Table{counts: counts}, nil
}

// labelSpan returns max label + 1, rejecting negative labels and labels
// that alone would exceed MaxCells. Bounds are checked before converting to
// int so that huge values cannot wrap.
func labelSpan(arg mathops.Arg, labels []float64) (int, error) {
	hi := 0
	for i, v := range labels {
		l := math.Trunc(v)
		if l < 0 {
			return 0, mathops.NewError(op, arg, mathops.ErrSingularity,
				fmt.Sprintf("negative label %v at index %d", v, i))
		}
		if l >= MaxCells {
			return 0, mathops.NewError(op, arg, mathops.ErrShape,
				fmt.Sprintf("label %v at index %d exceeds %d", v, i, MaxCells-1))
		}
		if int(l) > hi {
			hi = int(l)
		}
	}
	return hi + 1, nil
}

// Dims returns the number of distinct first and second label slots.
func (t *Table) Dims() (r, c int) {
	return t.counts.Dims()
}

// At returns the count for the label pair (i, j).
func (t *Table) At(i, j int) float64 {
	return t.counts.At(i, j)
}

// RowSums returns the per-label totals of the first labeling.
func (t *Table) RowSums() []float64 {
	r, _ := t.counts.Dims()
	sums := make([]float64, r)
	for i := range sums {
		sums[i] = floats.Sum(mat.Row(nil, i, t.counts))
	}
	return sums
}

// ColSums returns the per-label totals of the second labeling.
func (t *Table) ColSums() []float64 {
	_, c := t.counts.Dims()
	sums := make([]float64, c)
	for j := range sums {
		sums[j] = floats.Sum(mat.Col(nil, j, t.counts))
	}
	return sums
}

// Total returns the number of labeled positions.
func (t *Table) Total() float64 {
	return mat.Sum(t.counts)
}

// Cells returns every count in row-major order.
func (t *Table) Cells() []float64 {
	r, c := t.counts.Dims()
	cells := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		cells = append(cells, t.counts.RawRowView(i)...)
	}
	return cells
}
