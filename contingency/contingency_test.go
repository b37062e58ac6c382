package contingency

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VersusProject/similarity-3d/mathops"
)

func TestNewTable(t *testing.T) {
	a := []float64{0, 0, 1, 2, 2}
	b := []float64{1, 1, 0, 0, 3}

	tbl, err := NewTable(a, b)
	require.NoError(t, err)

	r, c := tbl.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, 2.0, tbl.At(0, 1))
	assert.Equal(t, 1.0, tbl.At(2, 3))
	assert.Equal(t, 0.0, tbl.At(1, 1))

	if diff := cmp.Diff([]float64{2, 1, 2}, tbl.RowSums()); diff != "" {
		t.Errorf("RowSums mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2, 2, 0, 1}, tbl.ColSums()); diff != "" {
		t.Errorf("ColSums mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5.0, tbl.Total())
	assert.Len(t, tbl.Cells(), 12)
}

func TestNewTableTruncatesLabels(t *testing.T) {
	tbl, err := NewTable([]float64{1.9, 0.2}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, tbl.At(1, 0))
	assert.Equal(t, 1.0, tbl.At(0, 0))
}

func TestNewTableErrors(t *testing.T) {
	_, err := NewTable([]float64{0, 1}, []float64{0})
	assert.True(t, errors.Is(err, mathops.ErrShape))

	_, err = NewTable([]float64{}, []float64{})
	assert.True(t, errors.Is(err, mathops.ErrShape))

	_, err = NewTable([]float64{0, 1}, []float64{0, -1})
	var opErr *mathops.Error
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, mathops.ErrSingularity, opErr.Kind)
	assert.Equal(t, mathops.ArgSecond, opErr.Arg)
}

func TestNewTableHugeLabels(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		arg  mathops.Arg
	}{
		{"wraps int conversion", []float64{1e19, 0}, []float64{0, 0}, mathops.ArgFirst},
		{"too large to allocate", []float64{1e10, 0}, []float64{1e10, 0}, mathops.ArgFirst},
		{"second labeling", []float64{0, 1}, []float64{0, MaxCells}, mathops.ArgSecond},
		{"table too large", []float64{0, 5000}, []float64{0, 5000}, mathops.ArgSecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ag Agreement
			var err error
			require.NotPanics(t, func() { ag, err = Analyze(tt.a, tt.b) })
			assert.Equal(t, Agreement{}, ag)

			var opErr *mathops.Error
			require.True(t, errors.As(err, &opErr), "got %v", err)
			assert.Equal(t, mathops.ErrShape, opErr.Kind)
			assert.Equal(t, tt.arg, opErr.Arg)
		})
	}
}

func TestPairs(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{5, 10},
	}
	for _, tt := range tests {
		got, err := Pairs(tt.x)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Pairs(%v)", tt.x)
	}

	got, err := PairsVec([]float64{2, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestIdenticalLabelings(t *testing.T) {
	labels := []float64{0, 0, 1, 1, 2}
	ag, err := Analyze(labels, labels)
	require.NoError(t, err)

	assert.Equal(t, 1.0, ag.RandIndex)
	assert.InDelta(t, 1.0, ag.AdjustedRandIndex, 1e-12)
	assert.Equal(t, 2.0, ag.Nij)
	assert.Equal(t, 2.0, ag.A2)
	assert.Equal(t, 2.0, ag.B2)
	assert.Equal(t, 10.0, ag.N2)
	assert.Equal(t, 5.0, ag.N)
}

func TestPermutedLabelings(t *testing.T) {
	ag, err := Analyze([]float64{0, 0, 1, 1}, []float64{1, 1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, ag.RandIndex)
	assert.InDelta(t, 1.0, ag.AdjustedRandIndex, 1e-12)
}

func TestIndependentLabelings(t *testing.T) {
	a := []float64{0, 0, 1, 1}
	b := []float64{0, 1, 0, 1}

	ri, err := RandIndex(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, ri, 1e-12)

	ari, err := AdjustedRandIndex(a, b)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, ari, 1e-12)
}

func TestSinglePosition(t *testing.T) {
	// N2 is zero, so both ratios fall back to the 0/0 convention.
	ag, err := Analyze([]float64{3}, []float64{7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, ag.N2)
	assert.Equal(t, 1.0, ag.RandIndex)
	assert.Equal(t, 0.0, ag.AdjustedRandIndex)
}

func BenchmarkAnalyze(b *testing.B) {
	x := make([]float64, 64*64*16)
	y := make([]float64, len(x))
	for i := range x {
		x[i] = float64(i % 8)
		y[i] = float64((i / 3) % 8)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Analyze(x, y)
	}
}
