// Package testutil provides testing utilities for growvec.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Sequences
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.Ints(100, 1000)   // 100 values in [0, 1000)
//
// # Operation Scripts
//
//	ops := rng.Ops(500)
//	for _, op := range ops {
//	    // apply op to a Vector and to a plain slice, compare
//	}
package testutil
