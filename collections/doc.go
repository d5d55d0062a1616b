// Package collections provides a fixed-capacity, non-owning sequence type
// whose storage is borrowed from the caller.
//
// # Overview
//
// The central type is [Collection][T]: a view over a [region.Region] plus a
// length counter. It never grows. Capacity is decided when the collection is
// bound and exceeding it is an error, not a reallocation:
//
//	var buf [8]int
//	c := collections.Over(region.Of(buf[:]))
//	_ = c.Add(1)
//	_ = c.Add(2)
//	v, _ := c.At(1) // → 2
//
// The collection writes straight into buf. Nothing is copied to the heap
// unless the caller's own memory already lives there.
//
// # Borrowing
//
// A Collection must not outlive the memory it views. With regions built by
// [region.Of] that rule is the caller's responsibility. With regions built by
// [region.Alloc] it is checked: once the owning [region.Scope] closes, every
// operation fails with [region.ErrScopeClosed] and enumeration yields nothing.
//
//	err := region.Run(func(s *region.Scope) error {
//	    c, err := collections.MakeIn[int](s, 16)
//	    if err != nil {
//	        return err
//	    }
//	    return c.Add(42)
//	})
//
// Copying a Collection value produces a second view over the same slots with
// its own length. Pass *Collection around instead.
//
// # Creating a collection
//
//	c := collections.Create(1, 2, 3)            // len 3, cap 3
//	c, err := collections.Make(10, func(c *collections.Collection[int]) error {
//	    return c.AddRange(1, 2, 3)
//	})                                          // len 3, cap 10
//	dst := collections.CreateResults[string](&c) // len 0, cap 10
//
// # Errors
//
// Every failure is a sentinel error from errors.go, wrapped with context.
// A failed operation never leaves a partial write behind.
//
// # Querying
//
// Lazy Where/Select pipelines over a Collection live in the sibling query
// package.
package collections
