package collections

import "errors"

// Sentinel errors returned by Collection operations.
//
// Errors are usually wrapped with the offending index or sizes, so compare
// with [errors.Is]:
//
//	if err := c.Add(v); errors.Is(err, collections.ErrCapacityExceeded) {
//	    // the backing region is full
//	}
var (
	// ErrCapacityExceeded is returned by Add, AddRange and by query
	// materialisation when a write would go past the collection's capacity.
	ErrCapacityExceeded = errors.New("collections: capacity exceeded")

	// ErrIndexOutOfRange is returned when an index is outside [0, Len()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrUninitializedDestination is returned by CopyTo when the destination
	// has no backing region.
	ErrUninitializedDestination = errors.New("collections: destination has no backing region")

	// ErrDestinationTooSmall is returned by CopyTo when the destination's
	// capacity is below the source's length.
	ErrDestinationTooSmall = errors.New("collections: destination too small")

	// ErrInvalidBounds is returned when a collection is bound with a negative
	// size, a capacity larger than its region or a length above its capacity.
	ErrInvalidBounds = errors.New("collections: invalid capacity or length")
)
