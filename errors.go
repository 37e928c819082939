package cg

import "errors"

// Errors returned by the math types. Degenerate inputs are reported
// through these values instead of propagating NaN or Inf.
var (
	// ErrZeroVector is returned when normalizing a vector of zero length.
	ErrZeroVector = errors.New("cg: zero-length vector")

	// ErrSingularMatrix is returned when inverting a matrix whose
	// determinant is zero (or too close to zero to invert reliably).
	ErrSingularMatrix = errors.New("cg: singular matrix")

	// ErrZeroW is returned when dehomogenizing a vector whose w component
	// is zero, i.e. a point at infinity.
	ErrZeroW = errors.New("cg: homogeneous coordinate w is zero")
)
