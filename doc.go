// Package slotvec provides an index-stable, slot-reusing dynamic array.
//
// A Vec stores values in fixed-position slots. Insert returns an integer handle
// that stays valid until that slot is removed; removing a value never shifts
// other values. Vacated slots are threaded into an embedded free list and
// recycled by later inserts, most recently vacated first.
//
// # Quick Start
//
//	v := slotvec.New[string]()
//	a := v.Insert("a") // 0
//	b := v.Insert("b") // 1
//
//	v.Remove(a)
//	c := v.Insert("c") // 0 again: the freed slot is reused
//
//	s, ok := v.Get(b) // "b", true
//	_ = v.At(c)       // "c"; panics if the slot is vacant
//
// # Access Styles
//
// Two access styles coexist:
//
//   - Get, GetMut, Remove and Contains report a missing value through a
//     comma-ok result. Use them to probe handles that may be stale.
//   - At and AtMut treat a missing value as a programming error and panic with
//     an *IndexError. Use them when surrounding logic guarantees occupancy.
//
// # Slot Reuse Order
//
// The free list is a LIFO stack keyed by removal time:
//
//	// slots 0..9 occupied
//	for i := 0; i < 5; i++ {
//	    v.Remove(i)
//	}
//	// next five inserts land at 4, 3, 2, 1, 0
//
// # Handles
//
// Handles carry no generation. A handle into a slot that was freed and then
// reused resolves to the new occupant.
//
// # Concurrency
//
// Vec has no internal locking. Guard the whole structure with a sync.Mutex or
// sync.RWMutex when it is shared between goroutines.
package slotvec
