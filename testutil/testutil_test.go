package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOps(t *testing.T) {
	rng := NewRNG(4711)

	ops := rng.Ops(1000, 0.3, 4)
	require.Len(t, ops, 1000)

	inserted := 0
	counts := map[OpKind]int{}
	for _, op := range ops {
		counts[op.Kind]++
		switch op.Kind {
		case OpInsert:
			inserted++
		case OpRemove, OpGet:
			assert.GreaterOrEqual(t, op.Index, -1)
			assert.LessOrEqual(t, op.Index, inserted+4)
		}
	}

	assert.Positive(t, counts[OpInsert])
	assert.Positive(t, counts[OpRemove])
	assert.Positive(t, counts[OpGet])
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	ops1 := rng.Ops(50, 0.3, 2)

	rng.Reset()
	ops2 := rng.Ops(50, 0.3, 2)

	assert.Equal(t, ops1, ops2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestOpKindString(t *testing.T) {
	assert.Equal(t, "insert", OpInsert.String())
	assert.Equal(t, "remove", OpRemove.String())
	assert.Equal(t, "get", OpGet.String())
	assert.Equal(t, "unknown", OpKind(42).String())
}

func TestModel(t *testing.T) {
	m := NewModel[string]()

	assert.Equal(t, 0, m.Insert("a"))
	assert.Equal(t, 1, m.Insert("b"))
	assert.Equal(t, 2, m.Insert("c"))

	v, ok := m.Remove(0)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = m.Remove(0)
	assert.False(t, ok)

	_, ok = m.Remove(1)
	assert.True(t, ok)

	// LIFO: 1 was freed last
	assert.Equal(t, 1, m.Insert("d"))
	assert.Equal(t, 0, m.Insert("e"))
	assert.Equal(t, 3, m.Insert("f"))

	assert.Equal(t, 4, m.UpperBound())
	assert.Equal(t, 4, m.Len())

	v, ok = m.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "e", v)
}
