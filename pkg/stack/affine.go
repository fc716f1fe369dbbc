package stack

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"dicomstack/pkg/geom"
)

// buildAffine constructs the 4x4 transform mapping homogeneous index
// coordinates (i, j, k, 1) to patient coordinates (x, y, z, 1), where i
// indexes columns, j rows, and k slices. Column 0 holds the physical step
// per column index, column 1 the step per row index, column 2 the step per
// slice index, and column 3 the position of the first slice in sorted
// order.
func buildAffine(first *Slice, spacing float64) *mat.Dense {
	colStep := r3.Scale(first.ColSpacing, first.RowCosine)
	rowStep := r3.Scale(first.RowSpacing, first.ColCosine)
	sliceStep := r3.Scale(spacing, geom.SliceNormal(first.RowCosine, first.ColCosine))

	return mat.NewDense(4, 4, []float64{
		colStep.X, rowStep.X, sliceStep.X, first.Position.X,
		colStep.Y, rowStep.Y, sliceStep.Y, first.Position.Y,
		colStep.Z, rowStep.Z, sliceStep.Z, first.Position.Z,
		0, 0, 0, 1,
	})
}
