package xform3d

import "errors"

// Errors reported for degenerate geometric input. Call sites wrap them
// with context, so compare with errors.Is.
var (
	// ErrDegenerateVector is returned when a zero-length (or non-finite)
	// vector would have to be normalized.
	ErrDegenerateVector = errors.New("xform3d: degenerate vector")

	// ErrInvalidBounds is returned by Ortho for a zero-width, zero-height
	// or zero-depth view box.
	ErrInvalidBounds = errors.New("xform3d: invalid bounds")

	// ErrEmptyStack is returned when popping or peeking an empty MatrixStack.
	ErrEmptyStack = errors.New("xform3d: empty matrix stack")

	// ErrIndexOutOfRange is returned for a row or column outside [0,3].
	ErrIndexOutOfRange = errors.New("xform3d: index out of range")
)
