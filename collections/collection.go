package collections

import (
	"fmt"
	"iter"

	"github.com/evangipson/StackCollection/region"
)

// Collection is a bounded, non-owning sequence over a [region.Region].
//
// Slots [0, Len()) hold the collection's elements; slots [Len(), Cap()) are
// unspecified until written. The zero value is a valid, empty collection with
// no backing region and no capacity.
//
// # Binding
//
//	var buf [4]string
//	c := collections.Over(region.Of(buf[:]))         // len 0, cap 4
//	c, err := collections.Bind(region.Of(buf[:]), 2, 0) // deliberately under-capacitated
//
// # Index policy
//
// Reads and writes by index are checked against Len(), not Cap(). Slots past
// the length are logically unpopulated and never handed out.
type Collection[T any] struct {
	region   region.Region[T]
	capacity int
	length   int
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

// Bind creates a view over r with the given capacity and an initial length.
// The first length slots of r are taken as already populated.
//
// capacity may be below r.Cap(). Both values must be non-negative, with
// length ≤ capacity ≤ r.Cap(); otherwise [ErrInvalidBounds] is returned.
// Binding 0/0 yields the empty, unusable collection.
func Bind[T any](r region.Region[T], capacity, length int) (Collection[T], error) {
	if capacity < 0 || length < 0 || capacity > r.Cap() || length > capacity {
		return Collection[T]{}, fmt.Errorf("%w: capacity %d, length %d, region %d",
			ErrInvalidBounds, capacity, length, r.Cap())
	}
	if err := r.Live(); err != nil {
		return Collection[T]{}, err
	}
	return Collection[T]{region: r, capacity: capacity, length: length}, nil
}

// Over creates an empty view using all of r's slots.
func Over[T any](r region.Region[T]) Collection[T] {
	return Collection[T]{region: r, capacity: r.Cap()}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of populated slots.
func (c *Collection[T]) Len() int { return c.length }

// Cap returns the declared bound. It may be below the region's slot count
// after Trim or an under-capacitated Bind.
func (c *Collection[T]) Cap() int { return c.capacity }

// IsEmpty reports whether the collection holds no elements.
func (c *Collection[T]) IsEmpty() bool { return c.length == 0 }

// IsFull reports whether the next Add would fail.
func (c *Collection[T]) IsFull() bool { return c.length >= c.capacity }

// Region returns the region c views.
func (c *Collection[T]) Region() region.Region[T] { return c.region }

// At returns the element at index i.
// Returns [ErrIndexOutOfRange] when i is outside [0, Len()-1].
func (c *Collection[T]) At(i int) (T, error) {
	p, err := c.Ref(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ref returns a pointer to the slot at index i for in-place updates.
// The pointer is only valid while the backing region is.
func (c *Collection[T]) Ref(i int) (*T, error) {
	slots, err := c.region.Slots()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= c.length {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, c.length)
	}
	return &slots[i], nil
}

// Set overwrites the element at index i.
func (c *Collection[T]) Set(i int, v T) error {
	p, err := c.Ref(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Add writes item into slot Len() and grows the length by one.
// Returns [ErrCapacityExceeded] without writing anything when the collection
// is full.
func (c *Collection[T]) Add(item T) error {
	slots, err := c.region.Slots()
	if err != nil {
		return err
	}
	if c.length >= c.capacity {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, c.capacity)
	}
	slots[c.length] = item
	c.length++
	return nil
}

// AddRange appends items in order. Either all of them fit or none is written.
func (c *Collection[T]) AddRange(items ...T) error {
	slots, err := c.region.Slots()
	if err != nil {
		return err
	}
	if len(items) > c.capacity-c.length {
		return fmt.Errorf("%w: capacity %d, length %d, adding %d",
			ErrCapacityExceeded, c.capacity, c.length, len(items))
	}
	c.length += copy(slots[c.length:c.capacity], items)
	return nil
}

// Clear zeroes the populated slots and resets the length to 0.
// Capacity is unchanged. References previously obtained from Ref read back
// the zero value afterwards.
func (c *Collection[T]) Clear() {
	if slots, err := c.region.Slots(); err == nil {
		clear(slots[:c.length])
	}
	c.length = 0
}

// Trim lowers the capacity to the current length. No data moves; later Add
// calls simply fail sooner.
func (c *Collection[T]) Trim() {
	c.capacity = c.length
}

// CopyTo overwrites dst with c's elements and sets dst's length to c's.
//
// An empty source clears dst. Otherwise dst must have a backing region
// ([ErrUninitializedDestination]) with at least Len() slots of capacity
// ([ErrDestinationTooSmall]). On failure dst is left untouched.
func (c *Collection[T]) CopyTo(dst *Collection[T]) error {
	src, err := c.region.Slots()
	if err != nil {
		return err
	}
	if c.length == 0 {
		if dst != nil {
			dst.Clear()
		}
		return nil
	}
	if dst == nil || dst.region.IsZero() {
		return ErrUninitializedDestination
	}
	out, err := dst.region.Slots()
	if err != nil {
		return err
	}
	if dst.capacity < c.length {
		return fmt.Errorf("%w: need %d, capacity %d", ErrDestinationTooSmall, c.length, dst.capacity)
	}
	n := copy(out[:c.length], src[:c.length])
	if dst.length > n {
		clear(out[n:dst.length])
	}
	dst.length = n
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Enumeration
// ─────────────────────────────────────────────────────────────────────────────

// Enumerator returns a fresh cursor positioned before the first element.
func (c *Collection[T]) Enumerator() Enumerator[T] {
	e := Enumerator[T]{region: c.region, index: -1}
	if slots, err := c.region.Slots(); err == nil {
		e.items = slots[:c.length]
	}
	return e
}

// Values returns an iterator over the elements in order.
func (c *Collection[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		e := c.Enumerator()
		for e.MoveNext() {
			if !yield(e.Current()) {
				return
			}
		}
	}
}

// All returns an iterator over index/element pairs in order.
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		e := c.Enumerator()
		for e.MoveNext() {
			if !yield(e.Index(), e.Current()) {
				return
			}
		}
	}
}

// ToSlice copies the elements into a new heap slice.
func (c *Collection[T]) ToSlice() []T {
	out := make([]T, 0, c.length)
	for v := range c.Values() {
		out = append(out, v)
	}
	return out
}
