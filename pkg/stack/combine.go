// Package stack assembles independently stored 2-D cross-sectional slices
// of one acquisition into a single ordered volume, together with the 4x4
// affine transform mapping sample indices to patient-space coordinates.
//
// The pipeline is strict and fail-fast: validate attributes, sort, derive
// the inter-slice spacing, build the affine, stack the pixel data. No
// partial volume is ever returned. Combine is a pure function of its input
// and options, holds no state across invocations, and is safe to call from
// any number of goroutines with disjoint inputs.
package stack

// Combine stitches the given slices into a Volume. The slices must form a
// single consistent sampling grid: identical orientation, in-plane spacing,
// matrix dimensions, and samples per pixel, with positions on a common line
// along the slice normal. Behavior is adjusted through the Option values;
// with none, slices are sorted spatially head to foot, spacing uniformity
// is enforced, raw sample values pass through untouched, and the slice
// axis is the last logical axis.
//
// A single-slice input yields a volume of depth 1 with unit slice spacing
// in the affine.
func Combine(slices []Slice, opts ...Option) (*Volume, error) {
	st := defaultSettings()
	for _, opt := range opts {
		opt(&st)
	}

	if len(slices) == 0 {
		return nil, ErrEmptyInput
	}
	if err := validateSlices(slices, st.tolerance); err != nil {
		return nil, err
	}

	sorted, coords, err := sortSlices(slices, st)
	if err != nil {
		return nil, err
	}

	spacing, err := sliceSpacing(coords, st.enforceSpacing, st.tolerance)
	if err != nil {
		return nil, err
	}

	affine := buildAffine(&sorted[0], spacing)
	return assembleVolume(sorted, affine, st)
}
