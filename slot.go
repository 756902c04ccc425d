package slotvec

// noSlot terminates the free list.
const noSlot = -1

// slot is one storage position. It is either occupied or vacant; the
// dynamic type is the tag, so a vacant slot can never carry a stale value.
type slot interface {
	isSlot()
}

// occupied holds a live value.
type occupied[T any] struct {
	value T
}

// vacant links to the next vacant slot, or noSlot at the tail.
type vacant struct {
	next int
}

func (*occupied[T]) isSlot() {}
func (vacant) isSlot()       {}

// expectOccupied returns the occupied slot at index i.
// It panics if the slot is vacant.
func expectOccupied[T any](s slot, i int) *occupied[T] {
	o, ok := s.(*occupied[T])
	if !ok {
		panic(&InvariantError{Index: i, Reason: "slot is vacant", Err: ErrCorrupted})
	}
	return o
}

// expectVacant returns the free-list link stored in the vacant slot at index i.
// It panics if the slot is occupied.
func expectVacant(s slot, i int) int {
	v, ok := s.(vacant)
	if !ok {
		panic(&InvariantError{Index: i, Reason: "slot is occupied", Err: ErrCorrupted})
	}
	return v.next
}
