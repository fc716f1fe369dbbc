package stack

import (
	"fmt"
	"sort"

	"dicomstack/pkg/geom"
)

// sortSlices returns the slices in combination order, together with each
// slice's scalar position projected onto the slice normal. The result is a
// permutation of the input; the input is never mutated.
func sortSlices(slices []Slice, st settings) ([]Slice, []float64, error) {
	switch {
	case st.presorted:
		return append([]Slice(nil), slices...), projections(slices), nil
	case st.instanceOrder:
		return sortByInstanceNumber(slices)
	default:
		return sortBySlicePosition(slices, st.tolerance)
	}
}

// projections computes each slice's position along the slice normal derived
// from the first slice's orientation.
func projections(slices []Slice) []float64 {
	normal := geom.SliceNormal(slices[0].RowCosine, slices[0].ColCosine)
	coords := make([]float64, len(slices))
	for i := range slices {
		coords[i] = geom.Project(normal, slices[i].Position)
	}
	return coords
}

// sortBySlicePosition orders slices by ascending position along the slice
// normal. Under the patient coordinate convention ascending order proceeds
// from the head toward the feet; the order is never reversed afterwards.
// Two slices projecting to the same coordinate within tolerance make the
// order ambiguous.
func sortBySlicePosition(slices []Slice, tol float64) ([]Slice, []float64, error) {
	coords := projections(slices)

	idx := make([]int, len(slices))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return coords[idx[a]] < coords[idx[b]] })

	sorted := make([]Slice, len(slices))
	sortedCoords := make([]float64, len(slices))
	for i, j := range idx {
		sorted[i] = slices[j]
		sortedCoords[i] = coords[j]
	}

	for i := 1; i < len(sortedCoords); i++ {
		if geom.Close(sortedCoords[i-1], sortedCoords[i], tol) {
			return nil, nil, fmt.Errorf("%w: slices %d and %d both project to %g",
				ErrAmbiguousOrdering, idx[i-1], idx[i], sortedCoords[i])
		}
	}
	return sorted, sortedCoords, nil
}

// sortByInstanceNumber orders slices by ascending instance number. The sort
// is stable, so repeated acquisitions at one position keep their input
// order. Every slice must carry an instance number.
func sortByInstanceNumber(slices []Slice) ([]Slice, []float64, error) {
	for i := range slices {
		if slices[i].InstanceNumber == nil {
			return nil, nil, fmt.Errorf("%w: slice %d", ErrMissingOrderingKey, i)
		}
	}

	sorted := append([]Slice(nil), slices...)
	sort.SliceStable(sorted, func(a, b int) bool {
		return *sorted[a].InstanceNumber < *sorted[b].InstanceNumber
	})
	return sorted, projections(sorted), nil
}
