package query

import (
	"iter"

	"github.com/evangipson/StackCollection/collections"
)

// Chain is a composed pipeline whose outermost stage is S and whose elements
// are of type T. Build one with [From] and extend it with [Where], [Select],
// [SelectPartial] or [Narrow].
//
// Chains are values: extending a chain copies it into the new, larger chain
// and leaves the original untouched. Terminal methods advance the receiver,
// so call them on a variable, not on a function result.
type Chain[T, S any, P StagePtr[T, S]] struct {
	stage S
}

// ─────────────────────────────────────────────────────────────────────────────
// Composition
// ─────────────────────────────────────────────────────────────────────────────

// From starts a chain that reads c in order. A nil c yields an empty chain.
func From[T any](c *collections.Collection[T]) Chain[T, Source[T], *Source[T]] {
	var src Source[T]
	if c != nil {
		src.e = c.Enumerator()
	}
	return Chain[T, Source[T], *Source[T]]{stage: src}
}

// Where keeps only the elements for which pred returns true, preserving order.
func Where[T, S any, P StagePtr[T, S]](q Chain[T, S, P], pred func(T) bool) Chain[T, WhereStage[T, S, P], *WhereStage[T, S, P]] {
	return Chain[T, WhereStage[T, S, P], *WhereStage[T, S, P]]{
		stage: WhereStage[T, S, P]{up: q.stage, pred: pred},
	}
}

// Select maps every element through proj. It never drops elements.
func Select[T, U, S any, P StagePtr[T, S]](q Chain[T, S, P], proj func(T) U) Chain[U, SelectStage[T, U, S, P], *SelectStage[T, U, S, P]] {
	return Chain[U, SelectStage[T, U, S, P], *SelectStage[T, U, S, P]]{
		stage: SelectStage[T, U, S, P]{up: q.stage, proj: proj},
	}
}

// SelectPartial maps elements through proj and drops those for which proj
// returns false.
//
//	evens := query.SelectPartial(q, func(n int) (string, bool) {
//	    return strconv.Itoa(n), n%2 == 0
//	})
func SelectPartial[T, U, S any, P StagePtr[T, S]](q Chain[T, S, P], proj func(T) (U, bool)) Chain[U, PartialStage[T, U, S, P], *PartialStage[T, U, S, P]] {
	return Chain[U, PartialStage[T, U, S, P], *PartialStage[T, U, S, P]]{
		stage: PartialStage[T, U, S, P]{up: q.stage, proj: proj},
	}
}

// Narrow keeps the elements whose dynamic type is U and yields them as U.
// It is meant for interface element types:
//
//	circles := query.Narrow[Circle](query.From(&shapes))
func Narrow[U, T, S any, P StagePtr[T, S]](q Chain[T, S, P]) Chain[U, NarrowStage[T, U, S, P], *NarrowStage[T, U, S, P]] {
	return Chain[U, NarrowStage[T, U, S, P], *NarrowStage[T, U, S, P]]{
		stage: NarrowStage[T, U, S, P]{up: q.stage},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal operations
// ─────────────────────────────────────────────────────────────────────────────

// Advance implements Stage, so a Chain can be driven by hand.
func (q *Chain[T, S, P]) Advance() (T, bool) {
	return P(&q.stage).Advance()
}

// Any reports whether the chain produces an element, or an element matching
// fns[0] when given. A nil predicate matches everything. It stops at the
// first hit.
func (q *Chain[T, S, P]) Any(fns ...func(T) bool) bool {
	var pred func(T) bool
	if len(fns) > 0 {
		pred = fns[0]
	}
	stage := P(&q.stage)
	for {
		v, ok := stage.Advance()
		if !ok {
			return false
		}
		if pred == nil || pred(v) {
			return true
		}
	}
}

// First returns the next element, or the zero value and false when the chain
// is exhausted.
func (q *Chain[T, S, P]) First() (T, bool) {
	return P(&q.stage).Advance()
}

// Count drains the chain and returns how many elements it produced.
func (q *Chain[T, S, P]) Count() int {
	stage := P(&q.stage)
	n := 0
	for {
		if _, ok := stage.Advance(); !ok {
			return n
		}
		n++
	}
}

// ToCollection clears dst and adds every element of the chain to it.
//
// A zero-capacity dst is left cleared and the chain is not driven. If the
// chain produces more elements than dst can hold, the Add error
// ([collections.ErrCapacityExceeded]) is returned and dst keeps the elements
// written so far.
func (q *Chain[T, S, P]) ToCollection(dst *collections.Collection[T]) error {
	if dst == nil {
		return collections.ErrUninitializedDestination
	}
	dst.Clear()
	if dst.Cap() == 0 {
		return nil
	}
	stage := P(&q.stage)
	for {
		v, ok := stage.Advance()
		if !ok {
			return nil
		}
		if err := dst.Add(v); err != nil {
			return err
		}
	}
}

// Values returns an iterator that drives the chain.
func (q *Chain[T, S, P]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		stage := P(&q.stage)
		for {
			v, ok := stage.Advance()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// OfType clears dst and fills it with the elements of src whose dynamic type
// is U, in order. It fails with [collections.ErrCapacityExceeded] when dst is
// too small.
func OfType[U, T any](src *collections.Collection[T], dst *collections.Collection[U]) error {
	q := Narrow[U](From(src))
	return q.ToCollection(dst)
}
