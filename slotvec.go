package slotvec

import (
	"fmt"
	"slices"
)

// Vec is a dynamic array whose indices stay stable across removals.
//
// Removed slots form a LIFO free list threaded through the vacant slots
// themselves; Insert pops from it before appending. The number of slots only
// grows.
//
// Vec is not safe for concurrent use.
type Vec[T any] struct {
	slots    []slot
	freeHead int
	occupied int

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty Vec.
func New[T any](opts ...Option) *Vec[T] {
	o := options{
		metricsCollector: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Vec[T]{
		slots:    make([]slot, 0, o.capacity),
		freeHead: noSlot,
		logger:   o.logger,
		metrics:  o.metricsCollector,
	}
}

// NewWithCapacity creates an empty Vec with backing storage for at least n
// slots. It is shorthand for New(WithCapacity(n), opts...).
func NewWithCapacity[T any](n int, opts ...Option) *Vec[T] {
	return New[T](append([]Option{WithCapacity(n)}, opts...)...)
}

// Insert stores value and returns its index.
//
// The most recently vacated slot is reused if there is one; otherwise the
// value is appended at UpperBound().
func (v *Vec[T]) Insert(value T) int {
	if i := v.freeHead; i != noSlot {
		v.freeHead = expectVacant(v.slots[i], i)
		v.slots[i] = &occupied[T]{value: value}
		v.occupied++
		v.observeInsert(i, true)
		return i
	}

	oldCap := cap(v.slots)
	v.slots = append(v.slots, &occupied[T]{value: value})
	if newCap := cap(v.slots); newCap != oldCap {
		v.observeGrow(oldCap, newCap)
	}

	i := len(v.slots) - 1
	v.occupied++
	v.observeInsert(i, false)
	return i
}

// Remove takes the value out of slot index and pushes the slot onto the free
// list. It returns false, and changes nothing, if index is out of range or
// the slot is already vacant.
func (v *Vec[T]) Remove(index int) (T, bool) {
	if index < 0 || index >= len(v.slots) {
		v.metrics.RecordRemove(false)
		var zero T
		return zero, false
	}
	if _, free := v.slots[index].(vacant); free {
		v.metrics.RecordRemove(false)
		var zero T
		return zero, false
	}

	o := expectOccupied[T](v.slots[index], index)
	next := v.freeHead
	v.slots[index] = vacant{next: next}
	v.freeHead = index
	v.occupied--

	v.metrics.RecordRemove(true)
	if v.logger != nil {
		v.logger.LogRemove(index, next)
	}
	return o.value, true
}

// Get returns the value at index. ok is false if index is out of range or
// the slot is vacant.
func (v *Vec[T]) Get(index int) (value T, ok bool) {
	o, ok := v.lookup(index)
	if !ok {
		return value, false
	}
	return o.value, true
}

// GetMut returns a pointer to the value at index, or false if index is out
// of range or the slot is vacant.
//
// The pointer stays valid until the slot is removed, even if the Vec grows.
func (v *Vec[T]) GetMut(index int) (*T, bool) {
	o, ok := v.lookup(index)
	if !ok {
		return nil, false
	}
	return &o.value, true
}

// At returns the value at index.
//
// It panics with an *IndexError if index is out of range or the slot is
// vacant; callers that cannot guarantee occupancy should use Get.
func (v *Vec[T]) At(index int) T {
	return v.mustLookup(index).value
}

// AtMut returns a pointer to the value at index.
//
// It panics with an *IndexError if index is out of range or the slot is
// vacant; callers that cannot guarantee occupancy should use GetMut.
func (v *Vec[T]) AtMut(index int) *T {
	return &v.mustLookup(index).value
}

// Contains reports whether index refers to an occupied slot.
func (v *Vec[T]) Contains(index int) bool {
	_, ok := v.lookup(index)
	return ok
}

// UpperBound returns the exclusive upper bound of every index ever handed
// out. Indices below it may be vacant. It never decreases.
func (v *Vec[T]) UpperBound() int {
	return len(v.slots)
}

// Len returns the number of occupied slots.
func (v *Vec[T]) Len() int {
	return v.occupied
}

// Cap returns the number of slots the backing storage can hold before it
// has to grow.
func (v *Vec[T]) Cap() int {
	return cap(v.slots)
}

// Reserve makes room for at least additional more appended slots without
// changing contents or index assignment. Free slots are not counted.
func (v *Vec[T]) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	oldCap := cap(v.slots)
	v.slots = slices.Grow(v.slots, additional)
	if newCap := cap(v.slots); newCap != oldCap {
		v.observeGrow(oldCap, newCap)
	}
}

// Clone returns a copy of v with the same slots and free list, so both
// reuse vacant slots in the same order. Values are copied with assignment.
// The clone shares v's logger and metrics collector.
func (v *Vec[T]) Clone() *Vec[T] {
	slots := make([]slot, len(v.slots), cap(v.slots))
	for i, s := range v.slots {
		if o, ok := s.(*occupied[T]); ok {
			slots[i] = &occupied[T]{value: o.value}
			continue
		}
		slots[i] = s
	}

	return &Vec[T]{
		slots:    slots,
		freeHead: v.freeHead,
		occupied: v.occupied,
		logger:   v.logger,
		metrics:  v.metrics,
	}
}

// String implements fmt.Stringer. It prints counters only, never values.
func (v *Vec[T]) String() string {
	return fmt.Sprintf("slotvec.Vec[len=%d upper=%d free=%d]", v.occupied, len(v.slots), v.freeHead)
}

func (v *Vec[T]) lookup(index int) (*occupied[T], bool) {
	if index < 0 || index >= len(v.slots) {
		return nil, false
	}
	o, ok := v.slots[index].(*occupied[T])
	return o, ok
}

func (v *Vec[T]) mustLookup(index int) *occupied[T] {
	if index < 0 || index >= len(v.slots) {
		panic(newIndexError(index, len(v.slots), ErrIndexOutOfRange))
	}
	o, ok := v.slots[index].(*occupied[T])
	if !ok {
		panic(newIndexError(index, len(v.slots), ErrVacantSlot))
	}
	return o
}

func (v *Vec[T]) observeInsert(index int, reused bool) {
	v.metrics.RecordInsert(reused)
	if v.logger != nil {
		v.logger.LogInsert(index, reused)
	}
}

func (v *Vec[T]) observeGrow(oldCap, newCap int) {
	v.metrics.RecordGrow(oldCap, newCap)
	if v.logger != nil {
		v.logger.LogGrow(oldCap, newCap)
	}
}
