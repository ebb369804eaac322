package growvec

// Iterator is a bidirectional cursor over the live range of a Vector at the
// time the iterator was created.
//
// Iterators are small values; copying one yields an independent cursor over
// the same storage. Any structural mutation of the source vector (Add,
// Insert, Remove, RemoveSet, Clear, or growth) invalidates every iterator
// obtained before it: further moves and dereferences return
// ErrStaleIterator.
type Iterator[T any] struct {
	pos  int
	data []T
	size int

	src        *Vector[T]
	generation uint64
}

func (v *Vector[T]) iteratorAt(pos int) Iterator[T] {
	return Iterator[T]{
		pos:        pos,
		data:       v.data,
		size:       v.length,
		src:        v,
		generation: v.generation,
	}
}

// Pos returns the current position in [0, size].
func (it Iterator[T]) Pos() int {
	return it.pos
}

// Next moves the iterator one element forward. It fails at the end sentinel.
func (it *Iterator[T]) Next() error {
	if err := it.check(); err != nil {
		return err
	}
	if it.pos >= it.size {
		return outOfRange(opNext, it.pos+1, it.size)
	}
	it.pos++
	return nil
}

// Advance moves the iterator one element forward and returns a copy of it
// taken before the move.
func (it *Iterator[T]) Advance() (Iterator[T], error) {
	prev := *it
	if err := it.Next(); err != nil {
		return prev, err
	}
	return prev, nil
}

// Prev moves the iterator one element back. It fails at position 0.
func (it *Iterator[T]) Prev() error {
	if err := it.check(); err != nil {
		return err
	}
	if it.pos == 0 {
		return outOfRange(opPrev, -1, it.size)
	}
	it.pos--
	return nil
}

// Retreat moves the iterator one element back and returns a copy of it
// taken before the move.
func (it *Iterator[T]) Retreat() (Iterator[T], error) {
	prev := *it
	if err := it.Prev(); err != nil {
		return prev, err
	}
	return prev, nil
}

// Value returns the element at the current position.
func (it Iterator[T]) Value() (T, error) {
	p, err := it.Ref()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ref returns a pointer to the element at the current position, allowing
// in-place mutation.
func (it Iterator[T]) Ref() (*T, error) {
	if err := it.check(); err != nil {
		return nil, err
	}
	if it.pos >= it.size {
		return nil, outOfRange(opValue, it.pos, it.size)
	}
	return &it.data[it.pos], nil
}

// Equal reports whether both iterators are at the same position.
// Only positions are compared; both iterators should come from the same
// vector and generation.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.pos == other.pos
}

func (it Iterator[T]) check() error {
	if it.src != nil && it.src.generation != it.generation {
		return ErrStaleIterator
	}
	return nil
}
