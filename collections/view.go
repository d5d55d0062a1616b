package collections

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// The methods in this file materialise the populated slots into a heap slice
// for display. They are meant for debugging and logging, not hot paths.
// Value receivers let both Collection[T] and *Collection[T] encode and print.

var (
	_ fmt.Stringer   = Collection[int]{}
	_ json.Marshaler = Collection[int]{}
	_ yaml.Marshaler = Collection[int]{}
	_ slog.LogValuer = Collection[int]{}
)

// ToJSON serialises the elements to a JSON array.
func (c Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.ToSlice())
}

// MarshalJSON implements [json.Marshaler]. Only the populated slots are
// encoded.
func (c Collection[T]) MarshalJSON() ([]byte, error) {
	return c.ToJSON()
}

// MarshalYAML implements [yaml.Marshaler] as a plain sequence.
func (c Collection[T]) MarshalYAML() (any, error) {
	return c.ToSlice(), nil
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.ToSlice())
	}
	return string(b)
}

// LogValue implements [slog.LogValuer] so collections can be passed to a
// structured logger directly:
//
//	logger.Debug("results ready", "results", dst)
func (c Collection[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("len", c.length),
		slog.Int("cap", c.capacity),
		slog.Any("items", c.ToSlice()),
	)
}
