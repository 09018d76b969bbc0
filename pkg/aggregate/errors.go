package aggregate

import "errors"

var (
	// ErrEmptySequence is returned by aggregations that have no
	// meaningful value for zero elements (min, max, average, reduce).
	ErrEmptySequence = errors.New("empty sequence")
	// ErrInvalidProjection is returned if a key or value selector
	// can not be applied.
	ErrInvalidProjection = errors.New("invalid projection")
)
