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

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// OpKind identifies a container operation.
type OpKind int

const (
	OpInsert OpKind = iota
	OpRemove
	OpGet
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpGet:
		return "get"
	default:
		return "unknown"
	}
}

// Op is one step of a random operation stream.
// Value is set for inserts, Index for removes and gets.
type Op struct {
	Kind  OpKind
	Index int
	Value int
}

// Ops generates n operations. removeRate is the probability of a remove,
// the same share goes to gets, and the rest are inserts. Indices are drawn
// from [-1, upper+slack] where upper is the number of inserts so far, so the
// stream also probes negative, one-past-the-end and never-assigned indices.
func (r *RNG) Ops(n int, removeRate float64, slack int) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, 0, n)
	inserted := 0
	for i := 0; i < n; i++ {
		p := r.rand.Float64()
		switch {
		case p < removeRate:
			ops = append(ops, Op{Kind: OpRemove, Index: r.rand.Intn(inserted+slack+2) - 1})
		case p < 2*removeRate:
			ops = append(ops, Op{Kind: OpGet, Index: r.rand.Intn(inserted+slack+2) - 1})
		default:
			ops = append(ops, Op{Kind: OpInsert, Value: i})
			inserted++
		}
	}
	return ops
}

// Model is a straightforward reference implementation of slot reuse: a map of
// live values plus an explicit LIFO stack of freed indices.
type Model[T any] struct {
	values map[int]T
	free   []int
	upper  int
}

// NewModel creates an empty Model.
func NewModel[T any]() *Model[T] {
	return &Model[T]{values: make(map[int]T)}
}

// Insert stores value at the most recently freed index, or appends.
func (m *Model[T]) Insert(value T) int {
	var idx int
	if n := len(m.free); n > 0 {
		idx = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		idx = m.upper
		m.upper++
	}
	m.values[idx] = value
	return idx
}

// Remove deletes the value at idx.
func (m *Model[T]) Remove(idx int) (T, bool) {
	v, ok := m.values[idx]
	if !ok {
		return v, false
	}
	delete(m.values, idx)
	m.free = append(m.free, idx)
	return v, true
}

// Get returns the value at idx.
func (m *Model[T]) Get(idx int) (T, bool) {
	v, ok := m.values[idx]
	return v, ok
}

// UpperBound returns the number of indices ever handed out.
func (m *Model[T]) UpperBound() int {
	return m.upper
}

// Len returns the number of live values.
func (m *Model[T]) Len() int {
	return len(m.values)
}
