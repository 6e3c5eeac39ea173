package idw

import "errors"

var (
	// ErrEmptyInput is returned when the reference set has no points.
	ErrEmptyInput = errors.New("empty reference set")

	// ErrUnsupportedMethod is returned for an unrecognized method tag.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrInvalidParameter is returned for a non-finite power exponent or
	// coordinate.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrMissingValue is returned when a reference point carries no value.
	ErrMissingValue = errors.New("reference point without value")
)
