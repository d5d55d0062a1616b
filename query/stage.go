package query

import "github.com/evangipson/StackCollection/collections"

// Stage produces the elements of a pipeline one at a time.
// Advance returns the next element and true, or the zero value and false once
// the stage is exhausted.
type Stage[T any] interface {
	Advance() (T, bool)
}

// StagePtr constrains P to be *S with S's pointer method set implementing
// Stage[T]. It lets a stage hold its upstream by value while still calling
// the upstream's pointer-receiver Advance without an interface conversion.
type StagePtr[T, S any] interface {
	*S
	Stage[T]
}

// Source is the root stage. It reads a collection through an Enumerator.
type Source[T any] struct {
	e collections.Enumerator[T]
}

// Advance implements Stage.
func (s *Source[T]) Advance() (T, bool) {
	if s.e.MoveNext() {
		return s.e.Current(), true
	}
	var zero T
	return zero, false
}

// WhereStage yields the upstream elements that satisfy pred.
type WhereStage[T, S any, P StagePtr[T, S]] struct {
	up   S
	pred func(T) bool
}

// Advance implements Stage.
func (w *WhereStage[T, S, P]) Advance() (T, bool) {
	up := P(&w.up)
	for {
		v, ok := up.Advance()
		if !ok {
			return v, false
		}
		if w.pred(v) {
			return v, true
		}
	}
}

// SelectStage maps every upstream element through proj.
type SelectStage[T, U, S any, P StagePtr[T, S]] struct {
	up   S
	proj func(T) U
}

// Advance implements Stage.
func (s *SelectStage[T, U, S, P]) Advance() (U, bool) {
	v, ok := P(&s.up).Advance()
	if !ok {
		var zero U
		return zero, false
	}
	return s.proj(v), true
}

// PartialStage maps upstream elements through proj, skipping those for which
// proj reports no value.
type PartialStage[T, U, S any, P StagePtr[T, S]] struct {
	up   S
	proj func(T) (U, bool)
}

// Advance implements Stage.
func (s *PartialStage[T, U, S, P]) Advance() (U, bool) {
	up := P(&s.up)
	for {
		v, ok := up.Advance()
		if !ok {
			var zero U
			return zero, false
		}
		if out, ok := s.proj(v); ok {
			return out, true
		}
	}
}

// NarrowStage yields the upstream elements whose dynamic type is U.
type NarrowStage[T, U, S any, P StagePtr[T, S]] struct {
	up S
}

// Advance implements Stage.
func (n *NarrowStage[T, U, S, P]) Advance() (U, bool) {
	up := P(&n.up)
	for {
		v, ok := up.Advance()
		if !ok {
			var zero U
			return zero, false
		}
		if out, ok := any(v).(U); ok {
			return out, true
		}
	}
}
