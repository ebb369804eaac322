package buffer

import "fmt"

// Grow returns a new buffer of newCap slots holding data[:length] at the
// same indices. It panics if newCap does not exceed len(data).
func Grow[T any](data []T, length, newCap int) []T {
	if newCap <= len(data) {
		panic(fmt.Sprintf("buffer: growth from capacity %d to %d does not increase capacity", len(data), newCap))
	}
	grown := make([]T, newCap)
	copy(grown, data[:length])
	return grown
}

// ShiftRight moves data[at:length] one slot to the right, highest index
// first. data must have room for length+1 elements. It returns the number
// of elements moved.
func ShiftRight[T any](data []T, at, length int) int {
	for i := length; i > at; i-- {
		data[i] = data[i-1]
	}
	return length - at
}

// ShiftLeft moves data[at+1:length] one slot to the left, lowest index
// first, and zeroes data[length-1]. It returns the number of elements moved.
func ShiftLeft[T any](data []T, at, length int) int {
	for i := at; i < length-1; i++ {
		data[i] = data[i+1]
	}
	var zero T
	data[length-1] = zero
	return length - 1 - at
}

// Compact drops every index for which drop reports true from data[:length],
// preserving the order of the survivors, and zeroes the freed tail. It
// returns the new length.
func Compact[T any](data []T, length int, drop func(i int) bool) int {
	w := 0
	for r := 0; r < length; r++ {
		if drop(r) {
			continue
		}
		if w != r {
			data[w] = data[r]
		}
		w++
	}
	clear(data[w:length])
	return w
}
