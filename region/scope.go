package region

import (
	"log/slog"

	"github.com/google/uuid"
)

// Scope is the lifetime token regions are allocated against.
//
// Every region handed out by [Alloc] stays valid until Close is called. After
// that its slots read back as zero and every access reports [ErrScopeClosed].
//
// A Scope is not safe for concurrent use. Like the regions it owns, it belongs
// to one call chain.
type Scope struct {
	id     uuid.UUID
	logger *slog.Logger
	closed bool
	poison []func()
}

// Option configures a Scope.
type Option func(*Scope)

// WithLogger sets the logger used for scope lifecycle records.
// Defaults to slog.Default() if nil or not supplied.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scope) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewScope opens a Scope. Callers must Close it when the owning frame exits;
// prefer [Run], which does that automatically.
func NewScope(opts ...Option) *Scope {
	s := &Scope{
		id:     uuid.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run opens a Scope, calls fn with it and closes the Scope when fn returns
// or panics. fn's error is returned unchanged.
func Run(fn func(s *Scope) error, opts ...Option) error {
	s := NewScope(opts...)
	defer s.Close()
	return fn(s)
}

// ID returns the identity used in this scope's log records.
func (s *Scope) ID() uuid.UUID { return s.id }

// Closed reports whether Close has been called.
func (s *Scope) Closed() bool { return s.closed }

// Regions returns the number of regions allocated against the scope that are
// still waiting to be poisoned on Close.
func (s *Scope) Regions() int { return len(s.poison) }

// Close zeroes every region allocated against s and invalidates them.
// Closing an already closed scope is a no-op.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	n := len(s.poison)
	for _, p := range s.poison {
		p()
	}
	s.poison = nil
	s.closed = true
	s.logger.Debug("region: scope closed",
		"scope", s.id,
		"regions", n,
	)
}

func (s *Scope) track(poison func()) {
	s.poison = append(s.poison, poison)
}
