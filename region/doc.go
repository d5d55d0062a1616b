// Package region provides fixed-size backing storage for bounded collections.
//
// A [Region] is a contiguous run of capacity element slots plus the element
// stride. It has no behaviour of its own: it is the memory a
// collections.Collection borrows.
//
// # Ownership
//
// A region is owned by whichever scope declared it. There are two ways to get
// one:
//
//	// Caller-owned memory, usually a local array.
//	var buf [16]int
//	r := region.Of(buf[:])
//
//	// Memory tied to an explicit Scope token.
//	err := region.Run(func(s *region.Scope) error {
//	    r, err := region.Alloc[int](s, 16)
//	    ...
//	})
//
// # Lifetimes
//
// Go has no compile-time lifetime tracking, so the rule that a view must not
// outlive its backing memory cannot be proven by the compiler. For regions
// built with [Of] the rule is a caller obligation. For regions built with
// [Alloc] it is checked at run time: closing the [Scope] zeroes every slot it
// handed out and every later access through the region fails with
// [ErrScopeClosed]. Code holding a stale view fails fast instead of reading
// recycled data.
//
// # Raw bytes
//
// [Region.Bytes] reinterprets the slots as a byte slice. It is only offered for
// element types that contain no pointers, since writing pointer words through
// a byte view would hide them from the garbage collector.
package region
