package stack

import (
	"fmt"
	"sort"

	"dicomstack/pkg/geom"
)

// sliceSpacing derives the representative inter-slice spacing from the
// sorted scalar positions. The median of the consecutive gaps is used so
// that a minority of anomalously large gaps (missing interior slices) does
// not bias the estimate the way a mean would. With enforcement enabled,
// every gap must match the median within tolerance.
func sliceSpacing(coords []float64, enforce bool, tol float64) (float64, error) {
	if len(coords) < 2 {
		// A single slice has no gaps; fall back to unit spacing so the
		// affine's slice column stays well defined.
		return 1, nil
	}

	gaps := make([]float64, len(coords)-1)
	for i := range gaps {
		gaps[i] = coords[i+1] - coords[i]
	}
	spacing := median(gaps)

	if enforce {
		for i, gap := range gaps {
			if !geom.Close(gap, spacing, tol) {
				return 0, fmt.Errorf("%w: gap between slices %d and %d is %g, expected %g",
					ErrNonUniformSpacing, i, i+1, gap, spacing)
			}
		}
	}
	return spacing, nil
}

// median returns the middle value of xs, averaging the two central values
// for even-length input. xs is not modified.
func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
