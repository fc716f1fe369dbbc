package stack

import "errors"

// Sentinel errors for the combine pipeline. Every failure is a deterministic
// input-data defect, never a transient fault; the caller decides whether to
// request corrected input or relax an enforcement option. Match with
// errors.Is; the returned error carries the offending slice or attribute in
// its message.
var (
	// ErrEmptyInput indicates that no slices were supplied.
	ErrEmptyInput = errors.New("stack: no slices supplied")

	// ErrMissingAttribute indicates a required attribute is absent on a slice.
	ErrMissingAttribute = errors.New("stack: required attribute missing")

	// ErrInconsistentAttribute indicates an attribute that must be invariant
	// across the set differs between slices beyond tolerance.
	ErrInconsistentAttribute = errors.New("stack: attribute differs across slices")

	// ErrInvalidOrientation indicates direction cosines that are not unit
	// length or not mutually orthogonal.
	ErrInvalidOrientation = errors.New("stack: invalid image orientation")

	// ErrAmbiguousOrdering indicates two or more slices share a projected
	// position, making the spatial sort order undefined.
	ErrAmbiguousOrdering = errors.New("stack: slices share a projected position")

	// ErrMissingOrderingKey indicates instance-number ordering was requested
	// but a slice carries no instance number.
	ErrMissingOrderingKey = errors.New("stack: slice has no instance number")

	// ErrNonUniformSpacing indicates an inter-slice gap deviating from the
	// median spacing while enforcement is enabled.
	ErrNonUniformSpacing = errors.New("stack: non-uniform slice spacing")

	// ErrMissingRescaleParameters indicates rescaling was requested but a
	// slice lacks its slope or intercept.
	ErrMissingRescaleParameters = errors.New("stack: rescale parameters missing")
)
