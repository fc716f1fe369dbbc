package stack

import "gonum.org/v1/gonum/spatial/r3"

// phantomSlice builds a 2x3 axial slice at height z whose sample values
// encode the slice height and in-plane index, so a misplaced sample is
// detectable in the combined volume.
func phantomSlice(z float64) Slice {
	const rows, cols = 2, 3
	pixels := make([]float64, rows*cols)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			pixels[j*cols+i] = z*100 + float64(j*cols+i)
		}
	}
	return Slice{
		PixelData:       pixels,
		Rows:            rows,
		Columns:         cols,
		SamplesPerPixel: 1,
		Position:        r3.Vec{X: 4, Y: 8, Z: z},
		RowCosine:       r3.Vec{X: 1},
		ColCosine:       r3.Vec{Y: 1},
		RowSpacing:      0.5,
		ColSpacing:      0.8,
		BitsStored:      12,
		HighBit:         11,
	}
}

// phantomSeries builds one phantom slice per given height.
func phantomSeries(zs ...float64) []Slice {
	slices := make([]Slice, len(zs))
	for i, z := range zs {
		slices[i] = phantomSlice(z)
	}
	return slices
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
