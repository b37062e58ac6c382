// Package similarity compares pairs of 3D volumes with a catalog of
// histogram distances and voxel overlap measures.
//
// Basic usage:
//
//	cmp, err := similarity.New(similarity.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	for _, r := range cmp.Compare(a, b) {
//		fmt.Println(r.Measure, r.Value, r.Err)
//	}
//
// A failing measure never stops the others: each Result carries its own error.
package similarity

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/VersusProject/similarity-3d/mathops"
	"github.com/VersusProject/similarity-3d/volume"
)

// ErrUnknownMeasure is returned by New for a name not in the registry.
var ErrUnknownMeasure = errors.New("unknown measure")

// Config configures a Comparator.
type Config struct {
	// Measures lists the measure names to evaluate, in output order.
	// Empty selects every registered measure.
	// Default: empty
	Measures []string

	// Bins is the number of intensity histogram bins.
	// Voxel values at or above Bins-1 share the last bin.
	// Default: 256
	Bins int

	// Normalize divides each histogram by its total before comparing.
	// Default: false
	Normalize bool

	// ProgressCallback is called after each measure with (done, total).
	// Default: nil
	ProgressCallback func(done, total int)
}

// DefaultConfig returns the default comparator configuration.
func DefaultConfig() Config {
	return Config{
		Bins:      256,
		Normalize: false,
	}
}

// Result is the outcome of one measure on one volume pair.
type Result struct {
	Measure string
	Value   float64
	Elapsed time.Duration
	Err     error
}

// Comparator evaluates a fixed list of measures on volume pairs. It holds no
// per-comparison state and is safe for concurrent use.
type Comparator struct {
	Config Config

	measures []Measure
}

// New resolves the configured measure names.
func New(config Config) (*Comparator, error) {
	if config.Bins <= 0 {
		return nil, errors.Newf("bins must be positive, got %d", config.Bins)
	}
	c := &Comparator{Config: config}
	if len(config.Measures) == 0 {
		c.measures = Measures()
		return c, nil
	}
	for _, name := range config.Measures {
		m, ok := LookupMeasure(name)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownMeasure, "%q", name)
		}
		c.measures = append(c.measures, m)
	}
	return c, nil
}

// Measures returns the measures this comparator evaluates.
func (c *Comparator) Measures() []Measure {
	return c.measures
}

// inputs lazily extracts what the measures consume from a volume pair.
type inputs struct {
	a, b *volume.Volume
	bins int
	norm bool

	hist    [2][]float64
	histErr error
	histSet bool

	vox    [2][]float64
	voxErr error
	voxSet bool
}

func (in *inputs) histograms() ([]float64, []float64, error) {
	if !in.histSet {
		in.histSet = true
		in.hist[0], in.hist[1], in.histErr = in.extractHistograms()
	}
	return in.hist[0], in.hist[1], in.histErr
}

func (in *inputs) extractHistograms() ([]float64, []float64, error) {
	p, err := in.a.Histogram(in.bins)
	if err != nil {
		return nil, nil, err
	}
	q, err := in.b.Histogram(in.bins)
	if err != nil {
		return nil, nil, err
	}
	if !in.norm {
		return p, q, nil
	}
	if p, err = mathops.Normalize(p); err != nil {
		return nil, nil, err
	}
	if q, err = mathops.Normalize(q); err != nil {
		return nil, nil, err
	}
	return p, q, nil
}

func (in *inputs) voxels() ([]float64, []float64, error) {
	if !in.voxSet {
		in.voxSet = true
		if in.voxErr = volume.SameShape(in.a, in.b); in.voxErr == nil {
			in.vox[0], in.vox[1] = in.a.Flatten(), in.b.Flatten()
		}
	}
	return in.vox[0], in.vox[1], in.voxErr
}

// Compare evaluates every measure on a and b, in configuration order.
func (c *Comparator) Compare(a, b *volume.Volume) []Result {
	results := make([]Result, len(c.measures))
	if err := nilVolume(a, b); err != nil {
		for i, m := range c.measures {
			results[i] = Result{Measure: m.Name, Err: err}
		}
		return results
	}

	in := &inputs{a: a, b: b, bins: c.Config.Bins, norm: c.Config.Normalize}
	for i, m := range c.measures {
		results[i] = c.evaluate(m, in)
		if c.Config.ProgressCallback != nil {
			c.Config.ProgressCallback(i+1, len(c.measures))
		}
	}
	return results
}

func (c *Comparator) evaluate(m Measure, in *inputs) Result {
	r := Result{Measure: m.Name}
	var p, q []float64
	if m.Input == VoxelInput {
		p, q, r.Err = in.voxels()
	} else {
		p, q, r.Err = in.histograms()
	}
	if r.Err != nil {
		return r
	}

	start := time.Now()
	r.Value, r.Err = m.Func(p, q)
	r.Elapsed = time.Since(start)
	return r
}

func nilVolume(a, b *volume.Volume) error {
	if a == nil {
		return mathops.NewError("compare", mathops.ArgFirst, mathops.ErrSingularity, "null value")
	}
	if b == nil {
		return mathops.NewError("compare", mathops.ArgSecond, mathops.ErrSingularity, "null value")
	}
	return nil
}
