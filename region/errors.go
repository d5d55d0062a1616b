package region

import "errors"

// Sentinel errors returned by region operations.
//
// Use [errors.Is] for comparisons:
//
//	if errors.Is(err, region.ErrScopeClosed) {
//	    // the view outlived its scope
//	}
var (
	// ErrScopeClosed is returned when a region is used after the Scope that
	// allocated it has been closed.
	ErrScopeClosed = errors.New("region: scope closed")

	// ErrNilScope is returned by Alloc when no Scope is supplied.
	ErrNilScope = errors.New("region: nil scope")

	// ErrNegativeCapacity is returned when a region is requested with fewer
	// than zero slots.
	ErrNegativeCapacity = errors.New("region: capacity must not be negative")

	// ErrNotPlainData is returned by Bytes when the element type contains
	// pointers, interfaces, maps, slices, strings, channels or funcs.
	ErrNotPlainData = errors.New("region: element type is not plain data")
)
