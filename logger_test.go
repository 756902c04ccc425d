package slotvec

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})).WithName("nodes")

	v := NewWithCapacity[int](1, WithLogger(logger))
	v.Insert(1)
	v.Insert(2)
	v.Remove(0)
	v.Insert(3)

	out := buf.String()
	assert.Contains(t, out, `msg="slot appended" vec=nodes index=0`)
	assert.Contains(t, out, `msg="storage grown" vec=nodes old_cap=1`)
	assert.Contains(t, out, `msg="slot removed" vec=nodes index=0 next_free=-1`)
	assert.Contains(t, out, `msg="slot reused" vec=nodes index=0`)
}

func TestLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	v := New[int](WithLogger(logger))
	v.Insert(1)
	v.Remove(0)

	assert.Empty(t, buf.String())
}

func TestLogger_Constructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelWarn))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))

	v := New[string](WithLogger(NoopLogger()))
	assert.NotPanics(t, func() {
		v.Insert("x")
		v.Remove(0)
		v.Reserve(10)
	})

	v = New[string](WithLogger(nil))
	assert.Equal(t, 0, v.Insert("y"))
}
