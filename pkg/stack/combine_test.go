package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCombineEmptyInput(t *testing.T) {
	_, err := Combine(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Combine([]Slice{})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestCombineSingleSlice(t *testing.T) {
	vol, err := Combine(phantomSeries(7))
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 1}, vol.Shape)
	assert.Equal(t, 7*100+0.0, vol.At(0, 0, 0, 0))
	assert.Equal(t, 7*100+5.0, vol.At(2, 1, 0, 0))

	// Degenerate slice spacing falls back to the unit convention.
	assert.Equal(t, 1.0, vol.Affine.At(2, 2))
	assert.Equal(t, 0.0, vol.Affine.At(0, 2))
	assert.Equal(t, 0.0, vol.Affine.At(1, 2))
}

func TestCombineOrdersByPosition(t *testing.T) {
	vol, err := Combine(phantomSeries(2, 0, 1))
	require.NoError(t, err)

	// Ascending position along the normal, head to foot, never reversed.
	for k, z := range []float64{0, 1, 2} {
		assert.Equal(t, z*100, vol.At(0, 0, k, 0), "slice %d", k)
	}
}

func TestCombinePermutationInvariance(t *testing.T) {
	canonical := phantomSeries(0, 1, 2, 3)
	permuted := phantomSeries(2, 0, 3, 1)

	volA, err := Combine(canonical)
	require.NoError(t, err)
	volB, err := Combine(permuted)
	require.NoError(t, err)

	assert.Equal(t, volA.Data, volB.Data)
	assert.Equal(t, volA.Shape, volB.Shape)
	assert.True(t, mat.Equal(volA.Affine, volB.Affine))
}

func TestCombineAffine(t *testing.T) {
	vol, err := Combine(phantomSeries(4, 0, 2))
	require.NoError(t, err)

	a := vol.Affine
	r, c := a.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)

	// Column 0: row cosine scaled by the column spacing.
	assert.Equal(t, 0.8, a.At(0, 0))
	assert.Equal(t, 0.0, a.At(1, 0))
	assert.Equal(t, 0.0, a.At(2, 0))

	// Column 1: column cosine scaled by the row spacing.
	assert.Equal(t, 0.0, a.At(0, 1))
	assert.Equal(t, 0.5, a.At(1, 1))
	assert.Equal(t, 0.0, a.At(2, 1))

	// Column 2: slice normal scaled by the derived spacing.
	assert.Equal(t, 0.0, a.At(0, 2))
	assert.Equal(t, 0.0, a.At(1, 2))
	assert.Equal(t, 2.0, a.At(2, 2))

	// Column 3: position of the first slice in sorted order, exactly.
	assert.Equal(t, 4.0, a.At(0, 3))
	assert.Equal(t, 8.0, a.At(1, 3))
	assert.Equal(t, 0.0, a.At(2, 3))

	// Homogeneous row.
	assert.Equal(t, []float64{0, 0, 0, 1}, []float64{a.At(3, 0), a.At(3, 1), a.At(3, 2), a.At(3, 3)})
}

func TestCombineDoesNotMutateInput(t *testing.T) {
	slices := phantomSeries(2, 0, 1)
	_, err := Combine(slices)
	require.NoError(t, err)

	for i, z := range []float64{2, 0, 1} {
		assert.Equal(t, z, slices[i].Position.Z)
	}
}

func TestCombineMissingAttribute(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Slice)
	}{
		{"pixel data", func(s *Slice) { s.PixelData = nil }},
		{"rows", func(s *Slice) { s.Rows = 0 }},
		{"columns", func(s *Slice) { s.Columns = 0 }},
		{"samples per pixel", func(s *Slice) { s.SamplesPerPixel = 0 }},
		{"row spacing", func(s *Slice) { s.RowSpacing = 0 }},
		{"column spacing", func(s *Slice) { s.ColSpacing = -1 }},
		{"row direction cosine", func(s *Slice) { s.RowCosine = r3.Vec{} }},
		{"column direction cosine", func(s *Slice) { s.ColCosine = r3.Vec{} }},
		{"bits stored", func(s *Slice) { s.BitsStored = 0 }},
		{"high bit", func(s *Slice) { s.HighBit = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slices := phantomSeries(0, 1)
			tc.mutate(&slices[1])

			_, err := Combine(slices)
			require.ErrorIs(t, err, ErrMissingAttribute)
			assert.Contains(t, err.Error(), tc.name)
			assert.Contains(t, err.Error(), "slice 1")
		})
	}
}

func TestCombineInconsistentOrientation(t *testing.T) {
	slices := phantomSeries(0, 1)
	slices[1].RowCosine = r3.Vec{Y: 1}
	slices[1].ColCosine = r3.Vec{X: 1}

	_, err := Combine(slices)
	require.ErrorIs(t, err, ErrInconsistentAttribute)
	assert.Contains(t, err.Error(), "orientation")
}

func TestCombineInconsistentGrid(t *testing.T) {
	slices := phantomSeries(0, 1)
	slices[1].RowSpacing = 0.6

	_, err := Combine(slices)
	require.ErrorIs(t, err, ErrInconsistentAttribute)
	assert.Contains(t, err.Error(), "row spacing")
}

func TestCombineToleratesEncodingVariation(t *testing.T) {
	// BitsStored and HighBit are explicitly permitted to differ.
	slices := phantomSeries(0, 1)
	slices[1].BitsStored = 16
	slices[1].HighBit = 15

	_, err := Combine(slices)
	require.NoError(t, err)
}

func TestCombineInvalidOrientation(t *testing.T) {
	slices := phantomSeries(0, 1)
	for i := range slices {
		slices[i].RowCosine = r3.Vec{X: 1, Y: 1}
	}

	_, err := Combine(slices)
	require.ErrorIs(t, err, ErrInvalidOrientation)
}

func TestCombineRescale(t *testing.T) {
	slices := phantomSeries(0, 1)
	for i := range slices {
		slices[i].RescaleSlope = floatPtr(2)
		slices[i].RescaleIntercept = floatPtr(10)
	}
	raw := slices[0].PixelData[0]

	vol, err := Combine(slices, WithRescale())
	require.NoError(t, err)
	assert.Equal(t, 2*raw+10, vol.At(0, 0, 0, 0))

	// Without the option the stored values pass through untouched even
	// though the parameters are present.
	vol, err = Combine(slices)
	require.NoError(t, err)
	assert.Equal(t, raw, vol.At(0, 0, 0, 0))
}

func TestCombineRescalePerSlice(t *testing.T) {
	// Slope and intercept may legitimately differ between slices; each
	// slice is rescaled with its own parameters.
	slices := phantomSeries(0, 1)
	slices[0].RescaleSlope = floatPtr(1)
	slices[0].RescaleIntercept = floatPtr(0)
	slices[1].RescaleSlope = floatPtr(3)
	slices[1].RescaleIntercept = floatPtr(-5)

	vol, err := Combine(slices, WithRescale())
	require.NoError(t, err)
	assert.Equal(t, slices[0].PixelData[0], vol.At(0, 0, 0, 0))
	assert.Equal(t, 3*slices[1].PixelData[0]-5, vol.At(0, 0, 1, 0))
}

func TestCombineMissingRescaleParameters(t *testing.T) {
	slices := phantomSeries(0, 1)
	slices[0].RescaleSlope = floatPtr(2)
	slices[0].RescaleIntercept = floatPtr(10)
	// slices[1] carries neither parameter.

	_, err := Combine(slices, WithRescale())
	require.ErrorIs(t, err, ErrMissingRescaleParameters)
	assert.Contains(t, err.Error(), "slice 1")
}
