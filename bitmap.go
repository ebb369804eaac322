package growvec

import (
	"context"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/growvec/internal/buffer"
)

// Select returns the positions of the elements for which pred reports true.
// Positions are 32-bit; elements beyond math.MaxUint32 are not visited.
func (v *Vector[T]) Select(pred func(T) bool) *roaring.Bitmap {
	rb := roaring.New()
	for i := 0; i < v.length && uint64(i) <= math.MaxUint32; i++ {
		if pred(v.data[i]) {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// RemoveSet removes every element whose position is in positions and
// returns the number removed. Survivors keep their relative order.
//
// The vector is left untouched when any position is not below Len().
func (v *Vector[T]) RemoveSet(positions *roaring.Bitmap) (int, error) {
	if positions == nil || positions.IsEmpty() {
		return 0, nil
	}
	requested := int(positions.GetCardinality())
	if last := int(positions.Maximum()); last >= v.length {
		err := outOfRange(opRemoveSet, last, v.length)
		v.logger.LogRemoveSet(context.Background(), requested, 0, err)
		return 0, err
	}

	oldLen := v.length
	first := int(positions.Minimum())
	v.length = buffer.Compact(v.data, v.length, func(i int) bool {
		return positions.Contains(uint32(i))
	})
	removed := oldLen - v.length
	if moved := oldLen - first - requested; moved > 0 {
		v.metrics.RecordShift(moved)
	}
	v.generation++
	v.logger.LogRemoveSet(context.Background(), requested, removed, nil)
	return removed, nil
}
