// Package buffer provides the storage primitives behind growvec.Vector.
//
// # Growth
//
// Grow allocates a new backing array and moves the live prefix into it.
// The old array is dropped, never resized in place.
//
// # Shifting
//
// ShiftRight opens a hole for an insertion by moving elements back to
// front. ShiftLeft closes a hole after a removal by moving elements front
// to back and zeroing the vacated tail slot.
package buffer
