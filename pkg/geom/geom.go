// Package geom provides the patient-space vector geometry needed to stack
// slices: direction-cosine checks, slice normals, position projection, and
// tolerance-based floating point comparison.
package geom

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// DefaultTolerance is the relative tolerance used for attribute and
	// spacing comparisons. Exact float equality is never used; callers may
	// override this value per invocation.
	DefaultTolerance = 1e-4

	// absFloor guards comparisons between values near zero, where a purely
	// relative tolerance collapses.
	absFloor = 1e-8
)

// Close reports whether a and b are equal within the given relative
// tolerance, with a small absolute floor near zero.
func Close(a, b, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, absFloor, tol)
}

// VecClose reports whether two vectors are component-wise Close.
func VecClose(a, b r3.Vec, tol float64) bool {
	return Close(a.X, b.X, tol) && Close(a.Y, b.Y, tol) && Close(a.Z, b.Z, tol)
}

// SliceNormal returns the vector perpendicular to the imaging plane spanned
// by the row and column direction cosines. For valid (unit, orthogonal)
// cosines the result is itself a unit vector.
func SliceNormal(rowCosine, colCosine r3.Vec) r3.Vec {
	return r3.Cross(rowCosine, colCosine)
}

// Project returns the scalar coordinate of p along the axis direction.
func Project(axis, p r3.Vec) float64 {
	return r3.Dot(axis, p)
}

// CheckOrientation verifies that the two direction cosines are unit length
// and mutually orthogonal within the absolute tolerance tol.
func CheckOrientation(rowCosine, colCosine r3.Vec, tol float64) error {
	if !scalar.EqualWithinAbs(r3.Dot(rowCosine, colCosine), 0, tol) {
		return fmt.Errorf("non-orthogonal direction cosines: %+v, %+v", rowCosine, colCosine)
	}
	if !scalar.EqualWithinAbs(r3.Norm(rowCosine), 1, tol) {
		return fmt.Errorf("row direction cosine is not unit length: %+v", rowCosine)
	}
	if !scalar.EqualWithinAbs(r3.Norm(colCosine), 1, tol) {
		return fmt.Errorf("column direction cosine is not unit length: %+v", colCosine)
	}
	return nil
}
