package collections

// DefaultCapacity is the slot count used when no explicit capacity is given.
const DefaultCapacity = 64

// Config holds sizing defaults for collections built by [MakeWith].
type Config struct {
	// Capacity is the number of slots to allocate.
	// Defaults to DefaultCapacity if zero or negative.
	Capacity int
}

// DefaultConfig returns a [Config] populated with the package defaults.
func DefaultConfig() Config {
	return Config{Capacity: DefaultCapacity}
}

// MakeWith is Make with its capacity taken from cfg.
func MakeWith[T any](cfg Config, build ...func(*Collection[T]) error) (Collection[T], error) {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return Make(capacity, build...)
}

// Default allocates a collection of DefaultCapacity slots.
func Default[T any](build ...func(*Collection[T]) error) (Collection[T], error) {
	return MakeWith(DefaultConfig(), build...)
}
