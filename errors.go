package prim

import "errors"

// Usage-sequence errors. These indicate a programming mistake in the
// caller; the batch state is left unchanged.
var (
	// ErrBatchAlreadyOpen is returned by Begin when the batch scope is
	// already open.
	ErrBatchAlreadyOpen = errors.New("prim: batch already open")

	// ErrBatchNotOpen is returned when vertices are added to, or End is
	// called on, a batch whose scope is closed.
	ErrBatchNotOpen = errors.New("prim: batch not open")
)

// Degenerate-input errors. Returned before any vertex is appended.
var (
	// ErrInvalidSegments is returned when a segment count is zero or negative.
	ErrInvalidSegments = errors.New("prim: segment count must be positive")

	// ErrTooFewPoints is returned when a polygon, strip or spline has fewer
	// control points than the shape requires.
	ErrTooFewPoints = errors.New("prim: too few points")
)

// ErrNilDevice is returned by Begin when the batch was built without a device.
var ErrNilDevice = errors.New("prim: nil device")
