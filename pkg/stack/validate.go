package stack

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"dicomstack/pkg/geom"
)

// validateSlices checks that every slice carries the required attributes
// and that the attributes defining the sampling grid are identical across
// the set within tolerance. BitsStored and HighBit must be present but may
// vary between slices.
func validateSlices(slices []Slice, tol float64) error {
	for i := range slices {
		if err := checkRequired(&slices[i]); err != nil {
			return fmt.Errorf("slice %d: %w", i, err)
		}
	}

	first := &slices[0]
	if err := geom.CheckOrientation(first.RowCosine, first.ColCosine, tol); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOrientation, err)
	}

	for i := 1; i < len(slices); i++ {
		s := &slices[i]
		switch {
		case !geom.VecClose(s.RowCosine, first.RowCosine, tol):
			return inconsistent("orientation (row cosine)", i, s.RowCosine, first.RowCosine)
		case !geom.VecClose(s.ColCosine, first.ColCosine, tol):
			return inconsistent("orientation (column cosine)", i, s.ColCosine, first.ColCosine)
		case !geom.Close(s.RowSpacing, first.RowSpacing, tol):
			return inconsistent("row spacing", i, s.RowSpacing, first.RowSpacing)
		case !geom.Close(s.ColSpacing, first.ColSpacing, tol):
			return inconsistent("column spacing", i, s.ColSpacing, first.ColSpacing)
		case s.Rows != first.Rows:
			return inconsistent("rows", i, s.Rows, first.Rows)
		case s.Columns != first.Columns:
			return inconsistent("columns", i, s.Columns, first.Columns)
		case s.SamplesPerPixel != first.SamplesPerPixel:
			return inconsistent("samples per pixel", i, s.SamplesPerPixel, first.SamplesPerPixel)
		}
	}
	return nil
}

// checkRequired reports the first required attribute absent from s.
func checkRequired(s *Slice) error {
	switch {
	case s.PixelData == nil:
		return fmt.Errorf("%w: pixel data", ErrMissingAttribute)
	case s.Rows <= 0:
		return fmt.Errorf("%w: rows", ErrMissingAttribute)
	case s.Columns <= 0:
		return fmt.Errorf("%w: columns", ErrMissingAttribute)
	case s.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel", ErrMissingAttribute)
	case s.RowSpacing <= 0:
		return fmt.Errorf("%w: row spacing", ErrMissingAttribute)
	case s.ColSpacing <= 0:
		return fmt.Errorf("%w: column spacing", ErrMissingAttribute)
	case s.RowCosine == (r3.Vec{}):
		return fmt.Errorf("%w: row direction cosine", ErrMissingAttribute)
	case s.ColCosine == (r3.Vec{}):
		return fmt.Errorf("%w: column direction cosine", ErrMissingAttribute)
	case s.BitsStored <= 0:
		return fmt.Errorf("%w: bits stored", ErrMissingAttribute)
	case s.HighBit <= 0:
		return fmt.Errorf("%w: high bit", ErrMissingAttribute)
	}
	if want := s.Rows * s.Columns * s.SamplesPerPixel; len(s.PixelData) != want {
		return fmt.Errorf("%w: pixel data has %d samples, want %d",
			ErrMissingAttribute, len(s.PixelData), want)
	}
	return nil
}

func inconsistent(name string, i int, got, want any) error {
	return fmt.Errorf("%w: %s on slice %d: %v != %v",
		ErrInconsistentAttribute, name, i, got, want)
}
