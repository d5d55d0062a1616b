package collections

import "github.com/evangipson/StackCollection/region"

// Enumerator is a forward cursor over a snapshot of a collection's elements.
//
//	e := c.Enumerator()
//	for e.MoveNext() {
//	    fmt.Println(e.Index(), e.Current())
//	}
//
// Enumerators are plain values; copies advance independently. Changing the
// source collection's length while enumerating is not detected. If the
// backing region's scope closes, MoveNext reports false.
//
// Current returns a copy of the element. To modify elements in place while
// walking a collection, use [Collection.Ref] with the cursor's Index.
type Enumerator[T any] struct {
	region region.Region[T]
	items  []T
	index  int
}

// MoveNext advances to the next element and reports whether there is one.
func (e *Enumerator[T]) MoveNext() bool {
	if e.region.Live() != nil {
		e.index = len(e.items)
		return false
	}
	if e.index+1 >= len(e.items) {
		e.index = len(e.items)
		return false
	}
	e.index++
	return true
}

// Current returns the element at the cursor. Only meaningful after MoveNext
// returned true.
func (e *Enumerator[T]) Current() T {
	if e.index < 0 || e.index >= len(e.items) {
		var zero T
		return zero
	}
	return e.items[e.index]
}

// Index returns the cursor position: -1 before the first MoveNext, Len() once
// exhausted.
func (e *Enumerator[T]) Index() int { return e.index }

// Remaining returns how many elements MoveNext will still produce.
func (e *Enumerator[T]) Remaining() int {
	if n := len(e.items) - e.index - 1; n > 0 {
		return n
	}
	return 0
}

// Reset moves the cursor back before the first element.
func (e *Enumerator[T]) Reset() { e.index = -1 }
