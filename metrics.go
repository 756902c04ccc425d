package slotvec

import "sync/atomic"

// MetricsCollector defines an interface for collecting container metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Callbacks run synchronously inside the mutating call and must not touch the
// Vec that invoked them.
type MetricsCollector interface {
	// RecordInsert is called after each insert.
	// reused is true when a vacant slot was recycled instead of appended.
	RecordInsert(reused bool)

	// RecordRemove is called after each remove.
	// found is false when the index held no value.
	RecordRemove(found bool)

	// RecordGrow is called when the backing storage is reallocated.
	RecordGrow(oldCap, newCap int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(bool)   {}
func (NoopMetricsCollector) RecordRemove(bool)   {}
func (NoopMetricsCollector) RecordGrow(int, int) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Counters are atomic, so one collector may be shared by vectors that are
// guarded by different locks.
type BasicMetricsCollector struct {
	Appends     atomic.Int64
	Reuses      atomic.Int64
	Removes     atomic.Int64
	RemoveMiss  atomic.Int64
	Grows       atomic.Int64
	MaxCapacity atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(reused bool) {
	if reused {
		b.Reuses.Add(1)
		return
	}
	b.Appends.Add(1)
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(found bool) {
	if found {
		b.Removes.Add(1)
		return
	}
	b.RemoveMiss.Add(1)
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_, newCap int) {
	b.Grows.Add(1)
	c := int64(newCap)
	for {
		cur := b.MaxCapacity.Load()
		if c <= cur || b.MaxCapacity.CompareAndSwap(cur, c) {
			return
		}
	}
}

// BasicMetricsStats is a point-in-time copy of a BasicMetricsCollector.
type BasicMetricsStats struct {
	Appends     int64
	Reuses      int64
	Removes     int64
	RemoveMiss  int64
	Grows       int64
	MaxCapacity int64
}

// GetStats returns a snapshot of the counters.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		Appends:     b.Appends.Load(),
		Reuses:      b.Reuses.Load(),
		Removes:     b.Removes.Load(),
		RemoveMiss:  b.RemoveMiss.Load(),
		Grows:       b.Grows.Load(),
		MaxCapacity: b.MaxCapacity.Load(),
	}
}

// ReuseRatio returns the fraction of inserts that recycled a vacant slot.
func (s BasicMetricsStats) ReuseRatio() float64 {
	total := s.Appends + s.Reuses
	if total == 0 {
		return 0
	}
	return float64(s.Reuses) / float64(total)
}
