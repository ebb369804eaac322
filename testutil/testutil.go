package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns num pseudo-random numbers in [0,n).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(num, n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, num)
	for i := range out {
		out[i] = r.rand.Intn(n)
	}
	return out
}

// OpKind identifies a sequence mutation in an operation script.
type OpKind int

const (
	OpAdd OpKind = iota
	OpInsert
	OpRemove
	OpSet
	OpClear
)

func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpSet:
		return "set"
	case OpClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Op is one step of an operation script.
//
// Pos is a raw random number; callers reduce it modulo the current length
// (plus one for inserts) so the script stays valid for any sequence state.
type Op struct {
	Kind  OpKind
	Pos   int
	Value int
}

// Ops returns a script of num operations. Adds and inserts dominate so the
// sequence tends to grow; clears are rare.
func (r *RNG) Ops(num int) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := make([]Op, num)
	for i := range ops {
		var kind OpKind
		switch p := r.rand.Intn(100); {
		case p < 40:
			kind = OpAdd
		case p < 65:
			kind = OpInsert
		case p < 85:
			kind = OpRemove
		case p < 98:
			kind = OpSet
		default:
			kind = OpClear
		}
		ops[i] = Op{
			Kind:  kind,
			Pos:   r.rand.Intn(1 << 30),
			Value: r.rand.Int(),
		}
	}
	return ops
}
