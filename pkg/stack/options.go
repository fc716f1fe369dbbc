package stack

import "dicomstack/pkg/geom"

// settings collects the policies of one Combine invocation. The zero
// configuration (before defaults) is never used directly; defaultSettings
// starts from the strictest behavior: spatial sort with duplicate
// detection, spacing enforcement, raw sample values, column-major axes.
type settings struct {
	rescale        bool
	instanceOrder  bool
	presorted      bool
	enforceSpacing bool
	axisOrder      AxisOrder
	tolerance      float64
}

func defaultSettings() settings {
	return settings{
		enforceSpacing: true,
		tolerance:      geom.DefaultTolerance,
	}
}

// Option configures a single Combine invocation. Options are independent
// and freely combinable.
type Option func(*settings)

// WithRescale applies each slice's own rescale slope and intercept to its
// sample values before stacking. Every slice must then carry both
// parameters.
func WithRescale() Option {
	return func(s *settings) { s.rescale = true }
}

// WithInstanceOrder sorts slices by instance number instead of projected
// spatial position. Required when the same physical location is sampled
// more than once, so that position alone cannot disambiguate the order.
func WithInstanceOrder() Option {
	return func(s *settings) { s.instanceOrder = true }
}

// WithPresortedInput trusts the caller-provided slice order completely: no
// reordering and no duplicate-position check are performed.
func WithPresortedInput() Option {
	return func(s *settings) { s.presorted = true }
}

// WithoutSpacingEnforcement tolerates non-uniform inter-slice gaps. The
// median gap is still applied uniformly to the affine, so the resulting
// grid approximates the true geometry; this is an explicit caller opt-in.
func WithoutSpacingEnforcement() Option {
	return func(s *settings) { s.enforceSpacing = false }
}

// WithCOrderAxes emits the slice axis first instead of last.
func WithCOrderAxes() Option {
	return func(s *settings) { s.axisOrder = COrderAxes }
}

// WithTolerance overrides the relative tolerance used for attribute and
// spacing comparisons.
func WithTolerance(tol float64) Option {
	return func(s *settings) { s.tolerance = tol }
}
