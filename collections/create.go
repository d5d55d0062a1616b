package collections

import (
	"fmt"
	"iter"
	"slices"

	"github.com/evangipson/StackCollection/region"
)

// This file contains constructors that allocate the backing region
// themselves. Use Bind / Over to view memory you already own.

// Sizer is anything with a declared capacity. It is what CreateResults needs
// from a source.
type Sizer interface {
	Cap() int
}

// Create allocates a region sized to items, copies them in and returns a full
// collection (Len() == Cap() == len(items)).
func Create[T any](items ...T) Collection[T] {
	slots := make([]T, len(items))
	copy(slots, items)
	return Collection[T]{region: region.Of(slots), capacity: len(slots), length: len(slots)}
}

// Collect drains seq into a newly allocated, full collection.
func Collect[T any](seq iter.Seq[T]) Collection[T] {
	slots := slices.Collect(seq)
	if slots == nil {
		slots = []T{}
	}
	return Collection[T]{region: region.Of(slots), capacity: len(slots), length: len(slots)}
}

// Make allocates an empty collection with room for capacity elements.
// If a builder is given it is called with the collection to populate it;
// its error is wrapped and returned alongside the partly built collection.
//
//	c, err := collections.Make(4, func(c *collections.Collection[string]) error {
//	    return c.AddRange("a", "b")
//	})
func Make[T any](capacity int, build ...func(*Collection[T]) error) (Collection[T], error) {
	if capacity < 0 {
		return Collection[T]{}, fmt.Errorf("%w: capacity %d", ErrInvalidBounds, capacity)
	}
	c := Over(region.Of(make([]T, capacity)))
	err := runBuilder(&c, build)
	return c, err
}

// MakeIn is Make with the region allocated against scope s, so the
// collection is invalidated when s closes.
func MakeIn[T any](s *region.Scope, capacity int, build ...func(*Collection[T]) error) (Collection[T], error) {
	r, err := region.Alloc[T](s, capacity)
	if err != nil {
		return Collection[T]{}, err
	}
	c := Over(r)
	err = runBuilder(&c, build)
	return c, err
}

// CreateIn is Create with the region allocated against scope s.
func CreateIn[T any](s *region.Scope, items ...T) (Collection[T], error) {
	c, err := MakeIn[T](s, len(items))
	if err != nil {
		return c, err
	}
	err = c.AddRange(items...)
	return c, err
}

// CreateResults returns an empty destination with as many slots as src has
// capacity. It is the natural target for query materialisation, since
// filtering and projecting never produce more elements than the source holds.
//
//	dst := collections.CreateResults[string](&src)
func CreateResults[U any](src Sizer) Collection[U] {
	return Over(region.Of(make([]U, src.Cap())))
}

func runBuilder[T any](c *Collection[T], build []func(*Collection[T]) error) error {
	if len(build) == 0 || build[0] == nil {
		return nil
	}
	if err := build[0](c); err != nil {
		return fmt.Errorf("collections: build: %w", err)
	}
	return nil
}
