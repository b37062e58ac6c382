// Package volume describes a 3D voxel grid and extracts the flattened voxel
// sequence and the intensity histogram that the measures consume.
package volume

import (
	"fmt"

	fm "github.com/VersusProject/similarity-3d/internal/math"
	"github.com/VersusProject/similarity-3d/mathops"
)

// Volume is a Width x Height x Depth voxel grid. Voxels are stored slice by
// slice (z), each slice row by row (x), each row holding Height values (y).
type Volume struct {
	Width  int
	Height int
	Depth  int
	Voxels []float64
}

// New validates the dimensions against the voxel count.
func New(width, height, depth int, voxels []float64) (*Volume, error) {
	const op = "volume"
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, mathops.NewError(op, mathops.ArgFirst, mathops.ErrShape,
			fmt.Sprintf("non-positive dimensions %dx%dx%d", width, height, depth))
	}
	if err := mathops.CheckArgs(op, voxels); err != nil {
		return nil, err
	}
	if n := width * height * depth; len(voxels) != n {
		return nil, mathops.NewError(op, mathops.ArgFirst, mathops.ErrShape,
			fmt.Sprintf("has %d voxels, want %dx%dx%d = %d", len(voxels), width, height, depth, n))
	}
	return &Volume{Width: width, Height: height, Depth: depth, Voxels: voxels}, nil
}

// FromSlices builds a volume from slices[z][x][y]. Every slice must have the
// same number of rows and every row the same length.
func FromSlices(slices [][][]float64) (*Volume, error) {
	const op = "volume"
	if len(slices) == 0 || len(slices[0]) == 0 {
		return nil, mathops.NewError(op, mathops.ArgFirst, mathops.ErrShape, "no voxels")
	}
	width, height := len(slices[0]), len(slices[0][0])
	voxels := make([]float64, 0, width*height*len(slices))
	for z, slice := range slices {
		if len(slice) != width {
			return nil, mathops.NewError(op, mathops.ArgFirst, mathops.ErrShape,
				fmt.Sprintf("slice %d has %d rows, want %d", z, len(slice), width))
		}
		for x, row := range slice {
			if len(row) != height {
				return nil, mathops.NewError(op, mathops.ArgFirst, mathops.ErrShape,
					fmt.Sprintf("slice %d row %d has %d values, want %d", z, x, len(row), height))
			}
			voxels = append(voxels, row...)
		}
	}
	return New(width, height, len(slices), voxels)
}

// Len returns the number of voxels.
func (v *Volume) Len() int {
	return len(v.Voxels)
}

// At returns the voxel at (x, y, z). Each coordinate must lie in
// [0, Width), [0, Height) and [0, Depth); At panics otherwise, like
// slice indexing.
func (v *Volume) At(x, y, z int) float64 {
	if x < 0 || x >= v.Width || y < 0 || y >= v.Height || z < 0 || z >= v.Depth {
		panic(fmt.Sprintf("volume: voxel (%d, %d, %d) out of range %dx%dx%d",
			x, y, z, v.Width, v.Height, v.Depth))
	}
	return v.Voxels[(z*v.Width+x)*v.Height+y]
}

// Flatten returns a copy of the voxels in storage order.
func (v *Volume) Flatten() []float64 {
	out := make([]float64, len(v.Voxels))
	copy(out, v.Voxels)
	return out
}

// Histogram counts voxel intensities into bins. A voxel with value x falls
// into bin int(x), clamped to [0, bins-1].
func (v *Volume) Histogram(bins int) ([]float64, error) {
	if bins <= 0 {
		return nil, mathops.NewError("histogram", mathops.ArgFirst, mathops.ErrShape,
			fmt.Sprintf("non-positive bin count %d", bins))
	}
	h := make([]float64, bins)
	for _, x := range v.Voxels {
		h[fm.ClampInt(int(x), 0, bins-1)]++
	}
	return h, nil
}

// SameShape reports a shape error naming the first dimension in which a and
// b differ.
func SameShape(a, b *Volume) error {
	const op = "volume"
	switch {
	case a == nil:
		return mathops.NewError(op, mathops.ArgFirst, mathops.ErrSingularity, "null value")
	case b == nil:
		return mathops.NewError(op, mathops.ArgSecond, mathops.ErrSingularity, "null value")
	case a.Height != b.Height:
		return mathops.NewError(op, mathops.ArgSecond, mathops.ErrShape, "features must have the same height")
	case a.Width != b.Width:
		return mathops.NewError(op, mathops.ArgSecond, mathops.ErrShape, "features must have the same width")
	case a.Depth != b.Depth:
		return mathops.NewError(op, mathops.ArgSecond, mathops.ErrShape, "features must have the same depth")
	}
	return nil
}
