package growvec

import (
	"context"
	"fmt"
	"iter"

	"github.com/hupe1980/growvec/internal/buffer"
)

// Vector is a contiguous, growable sequence of T.
//
// The zero value is not usable; construct vectors with New, NewSized, From
// or Of. A Vector is not safe for concurrent use.
type Vector[T any] struct {
	data       []T
	length     int
	initial    int
	grow       GrowthPolicy
	generation uint64

	metrics MetricsCollector
	logger  *Logger
}

// New returns an empty vector whose capacity is the initial capacity
// (DefaultInitialCapacity unless WithInitialCapacity is given).
func New[T any](optFns ...Option) *Vector[T] {
	return newVector[T](applyOptions(optFns))
}

// NewSized returns a vector holding n zero values.
//
// The capacity is twice n when n exceeds the initial capacity, otherwise it
// is the initial capacity. NewSized panics if n is negative.
func NewSized[T any](n int, optFns ...Option) *Vector[T] {
	if n < 0 {
		panic(fmt.Sprintf("growvec: negative size %d", n))
	}
	v := newVector[T](applyOptions(optFns))
	if n > v.initial {
		v.data = make([]T, n*2)
	}
	v.length = n
	return v
}

// From returns a vector holding a copy of items, appended one by one.
//
// The appends run under the default doubling policy; a policy given with
// WithGrowthPolicy is installed afterwards.
func From[T any](items []T, optFns ...Option) *Vector[T] {
	o := applyOptions(optFns)
	policy := o.growthPolicy
	o.growthPolicy = Doubling

	v := newVector[T](o)
	for _, item := range items {
		v.Add(item)
	}
	v.grow = policy
	return v
}

// Of is From with the items given as arguments.
func Of[T any](items ...T) *Vector[T] {
	return From(items)
}

func newVector[T any](o options) *Vector[T] {
	return &Vector[T]{
		data:    make([]T, o.initialCapacity),
		initial: o.initialCapacity,
		grow:    o.growthPolicy,
		metrics: o.metricsCollector,
		logger:  o.logger,
	}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// Generation returns the number of structural mutations performed so far.
func (v *Vector[T]) Generation() uint64 {
	return v.generation
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, outOfRange(opAt, i, v.length)
	}
	return v.data[i], nil
}

// Set replaces the element at index i.
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= v.length {
		return outOfRange(opSet, i, v.length)
	}
	v.data[i] = value
	return nil
}

// Ref returns a pointer to the element at index i.
//
// The pointer refers to the current backing buffer; it must not be retained
// across a structural mutation.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= v.length {
		return nil, outOfRange(opRef, i, v.length)
	}
	return &v.data[i], nil
}

// Add appends value, growing the buffer first when it is full.
func (v *Vector[T]) Add(value T) {
	v.ensureRoom()
	v.data[v.length] = value
	v.length++
	v.generation++
}

// Insert places value at index i, shifting the elements at i and above one
// slot to the right. Inserting at Len() appends.
func (v *Vector[T]) Insert(i int, value T) error {
	if i < 0 || i > v.length {
		return outOfRange(opInsert, i, v.length)
	}
	v.ensureRoom()
	if moved := buffer.ShiftRight(v.data, i, v.length); moved > 0 {
		v.metrics.RecordShift(moved)
	}
	v.data[i] = value
	v.length++
	v.generation++
	return nil
}

// Remove deletes the element at index i, shifting later elements one slot
// to the left.
func (v *Vector[T]) Remove(i int) error {
	if i < 0 || i >= v.length {
		return outOfRange(opRemove, i, v.length)
	}
	if moved := buffer.ShiftLeft(v.data, i, v.length); moved > 0 {
		v.metrics.RecordShift(moved)
	}
	v.length--
	v.generation++
	return nil
}

// Clear drops all elements. The capacity is kept, but the backing buffer is
// replaced, so no previously stored element remains reachable.
func (v *Vector[T]) Clear() {
	dropped := v.length
	v.data = make([]T, len(v.data))
	v.length = 0
	v.generation++
	v.metrics.RecordClear(len(v.data))
	v.logger.LogClear(context.Background(), len(v.data), dropped)
}

// Map calls fn with a pointer to every element in index order, allowing
// in-place mutation.
func (v *Vector[T]) Map(fn func(*T)) {
	for i := 0; i < v.length; i++ {
		fn(&v.data[i])
	}
}

// Begin returns an iterator positioned at the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return v.iteratorAt(0)
}

// End returns the end sentinel iterator, positioned one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return v.iteratorAt(v.length)
}

// Values returns an iterator over the elements in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// All returns an iterator over index-element pairs in index order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-element pairs from the last
// element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.length - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements.
func (v *Vector[T]) Slice() []T {
	out := make([]T, v.length)
	copy(out, v.data[:v.length])
	return out
}

func (v *Vector[T]) ensureRoom() {
	if v.length < len(v.data) {
		return
	}
	from := len(v.data)
	to := v.grow(from)
	v.data = buffer.Grow(v.data, v.length, to)
	v.generation++
	v.metrics.RecordGrowth(from, to)
	v.logger.LogGrowth(context.Background(), from, to, v.length)
}
