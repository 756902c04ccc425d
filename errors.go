package slotvec

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is wrapped by an *IndexError when the index is
	// negative or not below UpperBound.
	ErrIndexOutOfRange = errors.New("slotvec: index out of range")

	// ErrVacantSlot is wrapped by an *IndexError when the index is in range
	// but its slot holds no value.
	ErrVacantSlot = errors.New("slotvec: slot is vacant")

	// ErrCorrupted is wrapped by an *InvariantError when the free list or a
	// slot tag contradicts the bookkeeping.
	ErrCorrupted = errors.New("slotvec: corrupted free list")
)

// IndexError is the panic value of At and AtMut when the index does not refer
// to an occupied slot.
//
// The cause can be tested with errors.Is against ErrIndexOutOfRange or
// ErrVacantSlot.
type IndexError struct {
	Index      int
	UpperBound int
	Err        error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: index %d (upper bound %d)", e.Err, e.Index, e.UpperBound)
}

func (e *IndexError) Unwrap() error { return e.Err }

// InvariantError reports a violated structural invariant.
//
// Validate returns it; internal assertions panic with it.
type InvariantError struct {
	Index  int
	Reason string
	Err    error
}

func (e *InvariantError) Error() string {
	if e.Index == noSlot {
		return fmt.Sprintf("%v: %s", e.Err, e.Reason)
	}
	return fmt.Sprintf("%v: slot %d: %s", e.Err, e.Index, e.Reason)
}

func (e *InvariantError) Unwrap() error { return e.Err }

func newIndexError(index, upperBound int, err error) *IndexError {
	return &IndexError{Index: index, UpperBound: upperBound, Err: err}
}
