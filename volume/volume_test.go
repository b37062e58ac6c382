package volume

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/VersusProject/similarity-3d/mathops"
)

func TestNew(t *testing.T) {
	v, err := New(2, 3, 2, make([]float64, 12))
	require.NoError(t, err)
	assert.Equal(t, 12, v.Len())

	_, err = New(2, 3, 2, make([]float64, 11))
	assert.True(t, errors.Is(err, mathops.ErrShape))

	_, err = New(0, 3, 2, nil)
	assert.True(t, errors.Is(err, mathops.ErrShape))
}

func TestFromSlicesOrder(t *testing.T) {
	v, err := FromSlices([][][]float64{
		{{1, 2, 3}, {4, 5, 6}},
		{{7, 8, 9}, {10, 11, 12}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, v.Width)
	assert.Equal(t, 3, v.Height)
	assert.Equal(t, 2, v.Depth)
	assert.Equal(t, 6.0, v.At(1, 2, 0))
	assert.Equal(t, 8.0, v.At(0, 1, 1))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, v.Flatten())
}

func TestFromSlicesRagged(t *testing.T) {
	_, err := FromSlices([][][]float64{{{1, 2}, {3}}})
	assert.True(t, errors.Is(err, mathops.ErrShape))

	_, err = FromSlices([][][]float64{{{1}}, {{2}, {3}}})
	assert.True(t, errors.Is(err, mathops.ErrShape))

	_, err = FromSlices(nil)
	assert.True(t, errors.Is(err, mathops.ErrShape))
}

func TestAtOutOfRange(t *testing.T) {
	v, err := FromSlices([][][]float64{
		{{1, 2, 3}, {4, 5, 6}},
		{{7, 8, 9}, {10, 11, 12}},
	})
	require.NoError(t, err)

	// x == Width would otherwise alias the first voxel of the next slice
	assert.Panics(t, func() { v.At(2, 0, 0) })
	assert.Panics(t, func() { v.At(0, 3, 0) })
	assert.Panics(t, func() { v.At(0, 0, 2) })
	assert.Panics(t, func() { v.At(-1, 0, 0) })
	assert.NotPanics(t, func() { v.At(1, 2, 1) })
}

func TestFlattenCopies(t *testing.T) {
	v, err := New(1, 2, 1, []float64{1, 2})
	require.NoError(t, err)
	flat := v.Flatten()
	flat[0] = 9
	assert.Equal(t, 1.0, v.Voxels[0])
}

func TestHistogram(t *testing.T) {
	v, err := New(3, 2, 1, []float64{-5, 0, 1.7, 1, 3, 300})
	require.NoError(t, err)

	h, err := v.Histogram(4)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 0, 2}, h)
	assert.Equal(t, float64(v.Len()), floats.Sum(h))

	_, err = v.Histogram(0)
	assert.True(t, errors.Is(err, mathops.ErrShape))
}

func TestSameShape(t *testing.T) {
	base := &Volume{Width: 2, Height: 3, Depth: 4}

	tests := []struct {
		name  string
		other *Volume
		msg   string
	}{
		{"height", &Volume{Width: 2, Height: 1, Depth: 4}, "height"},
		{"width", &Volume{Width: 1, Height: 3, Depth: 4}, "width"},
		{"depth", &Volume{Width: 2, Height: 3, Depth: 1}, "depth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SameShape(base, tt.other)
			require.True(t, errors.Is(err, mathops.ErrShape))
			assert.Contains(t, err.Error(), "features must have the same "+tt.msg)
		})
	}

	assert.NoError(t, SameShape(base, &Volume{Width: 2, Height: 3, Depth: 4}))
	assert.True(t, errors.Is(SameShape(nil, base), mathops.ErrSingularity))
}
