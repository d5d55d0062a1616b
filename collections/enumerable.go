package collections

import "iter"

// Enumerable is the read-only surface of [Collection][T].
//
// Consumers that only display or inspect elements (debug views, loggers,
// serialisers) should accept Enumerable rather than *Collection so they can
// never mutate the length or the backing region.
type Enumerable[T any] interface {
	// Len returns the number of populated slots.
	Len() int

	// Cap returns the declared capacity.
	Cap() int

	// At returns the element at index i, or ErrIndexOutOfRange.
	At(i int) (T, error)

	// Enumerator returns a fresh cursor before the first element.
	Enumerator() Enumerator[T]

	// Values iterates the elements in order.
	Values() iter.Seq[T]

	// ToSlice copies the elements into a new heap slice.
	ToSlice() []T
}

var _ Enumerable[any] = (*Collection[any])(nil)
