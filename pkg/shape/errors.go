package shape

import "errors"

var (
	// ErrDegenerateFrame is returned when a local frame cannot be
	// derived: zero-length boundary direction, zero normal, or a
	// boundary direction parallel to the normal.
	ErrDegenerateFrame = errors.New("degenerate frame")
	// ErrDegenerateShape is returned when an operation targets a shape
	// it cannot work on, such as splitting a non-quad boundary or
	// resolving a split specification with no valid cuts.
	ErrDegenerateShape = errors.New("degenerate shape")
	// ErrUnsupportedExtrusion is returned when an extrusion produces a
	// cap that is not horizontal.
	ErrUnsupportedExtrusion = errors.New("unsupported extrusion")
)
