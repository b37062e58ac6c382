package similarity

import (
	"github.com/VersusProject/similarity-3d/contingency"
	"github.com/VersusProject/similarity-3d/distance"
	"github.com/VersusProject/similarity-3d/pixelset"
)

// Input selects what a measure is computed on.
type Input int

const (
	// HistogramInput measures compare the intensity histograms of two volumes.
	HistogramInput Input = iota
	// VoxelInput measures compare the flattened voxels of two equally shaped volumes.
	VoxelInput
)

func (i Input) String() string {
	if i == VoxelInput {
		return "voxels"
	}
	return "histogram"
}

// Measure is one entry of the measure registry.
type Measure struct {
	Name   string
	Family string
	Input  Input
	Func   func(a, b []float64) (float64, error)
}

const (
	familyPixelSet    = "Pixel Set"
	familyContingency = "Contingency"
)

var voxelMeasures = []Measure{
	{Name: "dice-voxel", Family: familyPixelSet, Input: VoxelInput, Func: pixelset.Dice},
	{Name: "jaccard-voxel", Family: familyPixelSet, Input: VoxelInput, Func: pixelset.Jaccard},
	{Name: "tee", Family: familyPixelSet, Input: VoxelInput, Func: pixelset.TEE},
	{Name: "tet", Family: familyPixelSet, Input: VoxelInput, Func: pixelset.TET},
	{Name: "rand-index", Family: familyContingency, Input: VoxelInput, Func: contingency.RandIndex},
	{Name: "adjusted-rand-index", Family: familyContingency, Input: VoxelInput, Func: contingency.AdjustedRandIndex},
}

// registry holds every measure in listing order; three-argument histogram
// measures are not reachable from a volume pair and are left out.
var registry = buildRegistry()

func buildRegistry() []Measure {
	ms := make([]Measure, 0, len(distance.Catalog)+len(voxelMeasures))
	for _, m := range distance.Catalog {
		if m.Func == nil {
			continue
		}
		ms = append(ms, Measure{Name: m.Name, Family: string(m.Family), Input: HistogramInput, Func: m.Func})
	}
	return append(ms, voxelMeasures...)
}

// Measures returns every registered measure.
func Measures() []Measure {
	out := make([]Measure, len(registry))
	copy(out, registry)
	return out
}

// LookupMeasure finds a measure by name. Histogram measure aliases such as
// "l2" or "kl" resolve to their catalog entry.
func LookupMeasure(name string) (Measure, bool) {
	if m, ok := distance.Lookup(name); ok {
		name = m.Name
	}
	for _, m := range registry {
		if m.Name == name {
			return m, true
		}
	}
	return Measure{}, false
}
