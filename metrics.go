package growvec

import "sync/atomic"

// MetricsCollector defines an interface for collecting storage metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A single collector may be shared by several vectors.
type MetricsCollector interface {
	// RecordGrowth is called after the backing buffer was replaced by a
	// larger one.
	RecordGrowth(from, to int)

	// RecordShift is called after an insert or remove moved elements.
	// moved is the number of elements relocated.
	RecordShift(moved int)

	// RecordClear is called after Clear replaced the backing buffer.
	RecordClear(capacity int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrowth(int, int) {}
func (NoopMetricsCollector) RecordShift(int)       {}
func (NoopMetricsCollector) RecordClear(int)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for tuning growth policies without external dependencies.
type BasicMetricsCollector struct {
	Growths       atomic.Int64
	SlotsGrown    atomic.Int64
	Shifts        atomic.Int64
	ElementsMoved atomic.Int64
	Clears        atomic.Int64
	MaxCapacity   atomic.Int64
}

// RecordGrowth implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrowth(from, to int) {
	b.Growths.Add(1)
	b.SlotsGrown.Add(int64(to - from))
	for {
		cur := b.MaxCapacity.Load()
		if int64(to) <= cur || b.MaxCapacity.CompareAndSwap(cur, int64(to)) {
			return
		}
	}
}

// RecordShift implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShift(moved int) {
	b.Shifts.Add(1)
	b.ElementsMoved.Add(int64(moved))
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear(int) {
	b.Clears.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		Growths:       b.Growths.Load(),
		SlotsGrown:    b.SlotsGrown.Load(),
		Shifts:        b.Shifts.Load(),
		ElementsMoved: b.ElementsMoved.Load(),
		AvgMoved:      b.getAvgMoved(),
		Clears:        b.Clears.Load(),
		MaxCapacity:   b.MaxCapacity.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgMoved() int64 {
	count := b.Shifts.Load()
	if count == 0 {
		return 0
	}
	return b.ElementsMoved.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	Growths       int64
	SlotsGrown    int64
	Shifts        int64
	ElementsMoved int64
	AvgMoved      int64
	Clears        int64
	MaxCapacity   int64
}
