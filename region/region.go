package region

import (
	"fmt"
	"unsafe"
)

// Region is a fixed run of element slots borrowed from an owning scope.
//
// The zero value is a region with no backing memory. Region values are small
// and meant to be copied; copies alias the same slots.
type Region[T any] struct {
	slots []T
	scope *Scope
}

// Of wraps caller-owned memory. The region's capacity is len(slots); any
// spare capacity of the slice is not reachable through the region.
//
// The caller keeps ownership: the region and every view over it must not be
// used after the memory's owner is gone.
func Of[T any](slots []T) Region[T] {
	return Region[T]{slots: slots[:len(slots):len(slots)]}
}

// Alloc allocates a region of capacity zeroed slots owned by s.
// The region is invalidated and zeroed when s closes.
func Alloc[T any](s *Scope, capacity int) (Region[T], error) {
	if s == nil {
		return Region[T]{}, ErrNilScope
	}
	if s.closed {
		return Region[T]{}, ErrScopeClosed
	}
	if capacity < 0 {
		return Region[T]{}, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	slots := make([]T, capacity)
	s.track(func() { clear(slots) })
	return Region[T]{slots: slots, scope: s}, nil
}

// IsZero reports whether r has no backing memory at all.
// A zero-capacity region built by Of or Alloc is not zero.
func (r Region[T]) IsZero() bool { return r.slots == nil }

// Cap returns the number of slots.
func (r Region[T]) Cap() int { return len(r.slots) }

// Stride returns the size in bytes of one slot.
func (r Region[T]) Stride() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Size returns the size in bytes of the whole region.
func (r Region[T]) Size() uintptr { return r.Stride() * uintptr(len(r.slots)) }

// Scope returns the scope r was allocated against, or nil for regions built
// with Of.
func (r Region[T]) Scope() *Scope { return r.scope }

// Live returns ErrScopeClosed if r's scope has been closed.
func (r Region[T]) Live() error {
	if r.scope != nil && r.scope.closed {
		return ErrScopeClosed
	}
	return nil
}

// Slots returns the typed slot view. It fails if the region is no longer live.
func (r Region[T]) Slots() ([]T, error) {
	if err := r.Live(); err != nil {
		return nil, err
	}
	return r.slots, nil
}
