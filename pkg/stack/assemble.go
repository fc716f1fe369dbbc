package stack

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// assembleVolume stacks the sorted slices' pixel data into one flat array.
// The memory layout is always stacking order (slice outermost, channel
// innermost); the axis-order policy only changes the logical Shape, so the
// two views are transposes of one another over identical data.
func assembleVolume(sorted []Slice, affine *mat.Dense, st settings) (*Volume, error) {
	first := &sorted[0]
	rows, cols, channels := first.Rows, first.Columns, first.SamplesPerPixel
	sliceLen := rows * cols * channels

	data := make([]float64, sliceLen*len(sorted))
	for k := range sorted {
		s := &sorted[k]
		block := data[k*sliceLen : (k+1)*sliceLen]
		if !st.rescale {
			copy(block, s.PixelData)
			continue
		}
		if s.RescaleSlope == nil || s.RescaleIntercept == nil {
			return nil, fmt.Errorf("%w: slice %d", ErrMissingRescaleParameters, k)
		}
		slope, intercept := *s.RescaleSlope, *s.RescaleIntercept
		for i, v := range s.PixelData {
			block[i] = v*slope + intercept
		}
	}

	var shape []int
	if st.axisOrder == COrderAxes {
		shape = []int{len(sorted), rows, cols}
	} else {
		shape = []int{cols, rows, len(sorted)}
	}
	if channels > 1 {
		shape = append(shape, channels)
	}

	return &Volume{
		Data:     data,
		Shape:    shape,
		Order:    st.axisOrder,
		Affine:   affine,
		rows:     rows,
		cols:     cols,
		slices:   len(sorted),
		channels: channels,
	}, nil
}
