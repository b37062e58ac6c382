package similarity

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VersusProject/similarity-3d/distance"
	"github.com/VersusProject/similarity-3d/mathops"
	"github.com/VersusProject/similarity-3d/volume"
)

func mustVolume(t *testing.T, w, h, d int, voxels ...float64) *volume.Volume {
	t.Helper()
	v, err := volume.New(w, h, d, voxels)
	require.NoError(t, err)
	return v
}

func resultsByName(results []Result) map[string]Result {
	m := make(map[string]Result, len(results))
	for _, r := range results {
		m[r.Measure] = r
	}
	return m
}

func TestCompareIdentical(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bins = 4
	cfg.Measures = []string{"euclidean", "cosine", "dice-voxel", "rand-index", "adjusted-rand-index", "tee", "kumar-hassebrook"}

	c, err := New(cfg)
	require.NoError(t, err)

	a := mustVolume(t, 2, 2, 1, 0, 0, 1, 1)
	b := mustVolume(t, 2, 2, 1, 0, 0, 1, 1)
	results := c.Compare(a, b)
	require.Len(t, results, len(cfg.Measures))
	for i, name := range cfg.Measures {
		assert.Equal(t, name, results[i].Measure)
	}

	byName := resultsByName(results)
	for _, name := range []string{"euclidean", "cosine", "dice-voxel", "rand-index", "adjusted-rand-index", "tee"} {
		assert.NoError(t, byName[name].Err, name)
	}
	assert.Equal(t, 0.0, byName["euclidean"].Value)
	assert.InDelta(t, 1.0, byName["cosine"].Value, 1e-9)
	assert.Equal(t, 1.0, byName["dice-voxel"].Value)
	assert.Equal(t, 1.0, byName["rand-index"].Value)
	assert.InDelta(t, 1.0, byName["adjusted-rand-index"].Value, 1e-12)
	assert.Equal(t, 1.0, byName["tee"].Value)

	kh := byName["kumar-hassebrook"]
	assert.True(t, errors.Is(kh.Err, mathops.ErrNotDefined))
	assert.True(t, math.IsNaN(kh.Value))
}

func TestCompareShapeMismatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bins = 4
	cfg.Measures = []string{"city-block", "jaccard-voxel"}
	c, err := New(cfg)
	require.NoError(t, err)

	a := mustVolume(t, 2, 2, 1, 0, 1, 2, 3)
	b := mustVolume(t, 1, 4, 1, 3, 2, 1, 0)
	byName := resultsByName(c.Compare(a, b))

	// Histograms ignore the grid layout.
	require.NoError(t, byName["city-block"].Err)
	assert.Equal(t, 0.0, byName["city-block"].Value)

	err = byName["jaccard-voxel"].Err
	assert.True(t, errors.Is(err, mathops.ErrShape))
	assert.Contains(t, err.Error(), "features must have the same height")
}

func TestCompareNormalized(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bins = 4
	cfg.Normalize = true
	cfg.Measures = []string{"intersection", "inner-product"}
	c, err := New(cfg)
	require.NoError(t, err)

	a := mustVolume(t, 2, 2, 1, 0, 1, 2, 3)
	byName := resultsByName(c.Compare(a, a))
	assert.InDelta(t, 1.0, byName["intersection"].Value, 1e-12)
	assert.InDelta(t, 0.25, byName["inner-product"].Value, 1e-12)
}

func TestCompareNilVolume(t *testing.T) {
	c, err := New(DefaultConfig())
	require.NoError(t, err)

	a := mustVolume(t, 1, 1, 1, 0)
	results := c.Compare(a, nil)
	require.Len(t, results, len(Measures()))
	for _, r := range results {
		assert.True(t, errors.Is(r.Err, mathops.ErrSingularity), r.Measure)
	}
}

func TestProgressCallback(t *testing.T) {
	var calls []int
	cfg := DefaultConfig()
	cfg.Measures = []string{"euclidean", "tet"}
	cfg.ProgressCallback = func(done, total int) {
		assert.Equal(t, 2, total)
		calls = append(calls, done)
	}
	c, err := New(cfg)
	require.NoError(t, err)

	a := mustVolume(t, 1, 2, 1, 1, 0)
	c.Compare(a, a)
	assert.Equal(t, []int{1, 2}, calls)
}

func TestNewErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Measures = []string{"euclidean", "no-such-measure"}
	_, err := New(cfg)
	assert.True(t, errors.Is(err, ErrUnknownMeasure))
	assert.Contains(t, err.Error(), "no-such-measure")

	cfg = DefaultConfig()
	cfg.Bins = 0
	_, err = New(cfg)
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	ms := Measures()
	assert.Len(t, ms, len(distance.Catalog)-len(distance.WeightedRegistry)+len(voxelMeasures))

	seen := make(map[string]bool)
	for _, m := range ms {
		assert.False(t, seen[m.Name], "duplicate %s", m.Name)
		seen[m.Name] = true
		assert.NotNil(t, m.Func, m.Name)
	}

	m, ok := LookupMeasure("kl")
	require.True(t, ok)
	assert.Equal(t, "kullback-leibler", m.Name)
	assert.Equal(t, HistogramInput, m.Input)

	m, ok = LookupMeasure("adjusted-rand-index")
	require.True(t, ok)
	assert.Equal(t, VoxelInput, m.Input)
	assert.Equal(t, "voxels", m.Input.String())

	_, ok = LookupMeasure("gower-weighted")
	assert.False(t, ok)
}
