// Package growvec provides Vector, a generic growable array with a
// pluggable capacity-growth policy.
//
// # Quick Start
//
//	v := growvec.New[int]()
//	v.Add(1)
//	v.Add(3)
//	_ = v.Insert(1, 2)     // 1 2 3
//	_ = v.Remove(0)        // 2 3
//	x, err := v.At(5)      // err wraps growvec.ErrOutOfRange
//
// # Growth
//
// A vector starts with DefaultInitialCapacity slots (or the value passed to
// WithInitialCapacity). When an Add or Insert finds the buffer full, the
// growth policy maps the current capacity to a new one, a fresh buffer is
// allocated and the live elements are moved over:
//
//	v := growvec.New[string](growvec.WithGrowthPolicy(growvec.Linear(5)))
//
// A policy must return a capacity strictly greater than its argument.
//
// # Iteration
//
// Begin and End return bidirectional iterators:
//
//	for it := v.Begin(); !it.Equal(v.End()); _ = it.Next() {
//	    x, _ := it.Value()
//	    fmt.Println(x)
//	}
//
// Iterators are invalidated by structural mutation (Add, Insert, Remove,
// RemoveSet, Clear, growth). A stale iterator reports ErrStaleIterator
// instead of reading a replaced buffer. Values, All and Backward offer
// range-over-func traversal.
//
// # Batch Removal
//
// Select and RemoveSet use Roaring bitmaps to pick positions and remove
// them in one compaction pass:
//
//	odd := v.Select(func(x int) bool { return x%2 == 1 })
//	n, err := v.RemoveSet(odd)
//
// # Concurrency
//
// A Vector is not safe for concurrent use.
package growvec
