package slotvec

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Stats is a snapshot of a Vec's bookkeeping.
type Stats struct {
	UpperBound int // slots ever handed out
	Occupied   int // slots holding a value
	Vacant     int // slots on the free list
	Capacity   int // backing storage capacity
	FreeHead   int // next slot Insert will reuse, or -1
}

// Stats returns the current counters in O(1).
func (v *Vec[T]) Stats() Stats {
	return Stats{
		UpperBound: len(v.slots),
		Occupied:   v.occupied,
		Vacant:     len(v.slots) - v.occupied,
		Capacity:   cap(v.slots),
		FreeHead:   v.freeHead,
	}
}

// Validate walks every slot and the whole free list and reports the first
// broken invariant as an *InvariantError. It runs in O(UpperBound) and is
// meant for tests and debugging.
//
// A valid Vec satisfies:
//   - every slot is either occupied or on the free list;
//   - the free list has no cycles and visits each vacant slot exactly once;
//   - the free-list head, when set, is vacant;
//   - Len plus the free-list length equals UpperBound.
func (v *Vec[T]) Validate() error {
	var occ, vac int
	for i, s := range v.slots {
		switch s.(type) {
		case *occupied[T]:
			occ++
		case vacant:
			vac++
		default:
			return v.invariantError(i, fmt.Sprintf("unknown slot type %T", s))
		}
	}
	if occ != v.occupied {
		return v.invariantError(noSlot, fmt.Sprintf("occupied count is %d, want %d", v.occupied, occ))
	}

	visited := roaring64.New()
	for i := v.freeHead; i != noSlot; {
		if i < 0 || i >= len(v.slots) {
			return v.invariantError(i, "free list link out of range")
		}
		if !visited.CheckedAdd(uint64(i)) {
			return v.invariantError(i, "free list revisits slot")
		}
		next, ok := v.slots[i].(vacant)
		if !ok {
			return v.invariantError(i, "free list reaches occupied slot")
		}
		i = next.next
	}

	if visited.GetCardinality() != uint64(vac) {
		for i, s := range v.slots {
			if _, ok := s.(vacant); ok && !visited.Contains(uint64(i)) {
				return v.invariantError(i, "vacant slot not on free list")
			}
		}
	}
	return nil
}

func (v *Vec[T]) invariantError(index int, reason string) error {
	return &InvariantError{Index: index, Reason: reason, Err: ErrCorrupted}
}
