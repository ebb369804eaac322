package growvec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is the class of every invalid position: indexed access
	// past the live range, insertion past the end, removal of a missing
	// element, and iterator moves beyond either boundary.
	ErrOutOfRange = errors.New("out of range")

	// ErrStaleIterator is returned when an iterator is used after its
	// source vector was structurally mutated.
	ErrStaleIterator = errors.New("stale iterator")
)

// IndexError reports an invalid position passed to a Vector or Iterator
// operation.
//
// errors.Is(err, ErrOutOfRange) holds for every IndexError.
type IndexError struct {
	Op     string
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	switch e.Op {
	case opRemove:
		return fmt.Sprintf("growvec: %s: index out of bounds: index %d, length %d", e.Op, e.Index, e.Length)
	case opNext, opPrev, opValue:
		return fmt.Sprintf("growvec: iterator %s: position %d outside of range [0, %d]", e.Op, e.Index, e.Length)
	default:
		return fmt.Sprintf("growvec: %s: out of range: index %d, length %d", e.Op, e.Index, e.Length)
	}
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

const (
	opAt        = "at"
	opSet       = "set"
	opRef       = "ref"
	opInsert    = "insert"
	opRemove    = "remove"
	opRemoveSet = "remove set"
	opNext      = "next"
	opPrev      = "prev"
	opValue     = "value"
)

func outOfRange(op string, index, length int) error {
	return &IndexError{Op: op, Index: index, Length: length}
}
