package stack

import "gonum.org/v1/gonum/mat"

// AxisOrder selects the logical axis order of an assembled Volume.
type AxisOrder int

const (
	// ColumnMajorAxes orders the logical axes [column, row, slice]; the
	// slice axis is last and is the slowest-varying in memory, as produced
	// naturally by stacking.
	ColumnMajorAxes AxisOrder = iota

	// COrderAxes reverses the logical axes to [slice, row, column] for
	// consumers expecting C conventions. This is a pure transpose of the
	// default view; the memory layout is identical.
	COrderAxes
)

// Volume is the assembled sample array of one acquisition: 3-D, or 4-D
// with a trailing channel axis when SamplesPerPixel > 1.
type Volume struct {
	// Data holds the samples in stacking order: slice outermost, then row,
	// then column, with channels innermost.
	Data []float64

	// Shape is the logical extent of each axis, ordered per Order. A
	// channel axis is appended for multi-channel volumes.
	Shape []int

	// Order records the logical axis order Shape follows.
	Order AxisOrder

	// Affine maps homogeneous index coordinates (i, j, k, 1) to
	// homogeneous patient coordinates (x, y, z, 1), where i indexes
	// columns, j rows, and k slices.
	Affine *mat.Dense

	rows, cols, slices, channels int
}

// Dims returns the extent of the column, row, slice, and channel axes.
// Unlike Shape, the order is fixed regardless of the axis-order policy.
func (v *Volume) Dims() (cols, rows, slices, channels int) {
	return v.cols, v.rows, v.slices, v.channels
}

// At returns the sample at column index i, row index j, slice index k, and
// channel c. The index meaning is independent of the axis-order policy;
// pass c = 0 for single-channel volumes.
func (v *Volume) At(i, j, k, c int) float64 {
	return v.Data[((k*v.rows+j)*v.cols+i)*v.channels+c]
}
