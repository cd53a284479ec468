package observable

import "errors"

// Sentinel errors for errors.Is() checking.
var (
	// ErrIndexOutOfRange is returned by List mutations given an index outside
	// the list's bounds. The list is left unchanged.
	ErrIndexOutOfRange = errors.New("observable: index out of range")

	// ErrInvariantViolation is returned by a Projection when a change
	// references an index or length that is inconsistent with its source.
	// It indicates a broken producer and is never clamped.
	ErrInvariantViolation = errors.New("observable: invariant violation")

	// ErrInvalidCapacity is returned by Attach for a non-positive capacity.
	ErrInvalidCapacity = errors.New("observable: capacity must be positive")
)
