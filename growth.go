package growvec

import (
	"fmt"
	"math"
)

// GrowthPolicy maps the current capacity of a full vector to its next
// capacity.
//
// The returned capacity must be strictly greater than the argument. This is
// an obligation on the caller: a vector whose policy violates it panics on
// the growth that observes the violation.
type GrowthPolicy func(capacity int) int

// Doubling is the default growth policy: c -> 2c.
func Doubling(capacity int) int {
	return capacity * 2
}

// Linear returns a policy that adds step slots on every growth.
// step values below 1 are treated as 1.
func Linear(step int) GrowthPolicy {
	if step < 1 {
		step = 1
	}
	return func(capacity int) int {
		return capacity + step
	}
}

// Factor returns a policy that multiplies the capacity by f, rounding up,
// and always grows by at least one slot. f must be greater than 1.
func Factor(f float64) GrowthPolicy {
	if !(f > 1) {
		panic(fmt.Sprintf("growvec: growth factor must be > 1, got %v", f))
	}
	return func(capacity int) int {
		next := int(math.Ceil(float64(capacity) * f))
		if next <= capacity {
			next = capacity + 1
		}
		return next
	}
}
