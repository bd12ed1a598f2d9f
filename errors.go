package generative

import "errors"

// Common errors returned by geometry and cursor tracking operations.
var (
	// ErrSingularMatrix is returned when a transformation matrix has no
	// inverse.
	ErrSingularMatrix = errors.New("generative: matrix is not invertible")

	// ErrNotRendered is returned when an element has no screen CTM, usually
	// because it is not attached to a rendered surface.
	ErrNotRendered = errors.New("generative: element is not rendered")
)
