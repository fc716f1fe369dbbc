package stack

import "gonum.org/v1/gonum/spatial/r3"

// Slice is one 2-D cross-sectional image of an acquisition together with
// its geometric metadata. Slices are produced by an external parser and are
// read-only to this package; Combine never mutates them.
type Slice struct {
	// PixelData holds the stored sample values in row-major order:
	// Rows*Columns values, or Rows*Columns*SamplesPerPixel for
	// multi-channel slices with channels innermost.
	PixelData []float64

	// Rows and Columns are the in-plane matrix dimensions.
	Rows    int
	Columns int

	// SamplesPerPixel is the number of channels per sample (1 for
	// grayscale modalities).
	SamplesPerPixel int

	// Position is the patient-space location of the first transmitted
	// sample of this slice, in mm.
	Position r3.Vec

	// RowCosine and ColCosine are the unit direction cosines of the
	// in-plane row and column axes.
	RowCosine r3.Vec
	ColCosine r3.Vec

	// RowSpacing and ColSpacing are the physical distances between the
	// centers of adjacent samples along each in-plane axis, in mm.
	RowSpacing float64
	ColSpacing float64

	// InstanceNumber is the acquisition-assigned sequence index, when
	// present. Required only for instance-order sorting.
	InstanceNumber *int

	// RescaleSlope and RescaleIntercept define the linear map from stored
	// to physical sample values. Required only when rescaling is
	// requested; they may legitimately differ between slices.
	RescaleSlope     *float64
	RescaleIntercept *float64

	// BitsStored and HighBit describe the stored sample encoding. Every
	// slice must carry them (zero means absent) but they are allowed to
	// vary across the set; this package does not reinterpret sample
	// encoding.
	BitsStored int
	HighBit    int
}
