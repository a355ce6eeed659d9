package frontier

import "sync/atomic"

// AddOutcome describes what an Add call did with the state.
type AddOutcome int

const (
	// AddInserted means the state was not in the frontier and was queued.
	AddInserted AddOutcome = iota

	// AddReprioritized means the state was queued at a strictly lower
	// priority than before.
	AddReprioritized

	// AddIgnored means the state was already queued at an equal or lower
	// priority and the call was a no-op.
	AddIgnored
)

// MetricsCollector defines an interface for collecting frontier metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    addCounter *prometheus.CounterVec
//	    popCounter prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordAdd(outcome frontier.AddOutcome) {
//	    p.addCounter.WithLabelValues(outcomeLabel(outcome)).Inc()
//	}
type MetricsCollector interface {
	// RecordAdd is called after each Add operation with its outcome.
	RecordAdd(outcome AddOutcome)

	// RecordPop is called after each Pop operation. err is nil if a state
	// was returned.
	RecordPop(err error)

	// RecordPrepare is called when the frontier is prepared for a new search.
	RecordPrepare()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(AddOutcome) {}
func (NoopMetricsCollector) RecordPop(error)      {}
func (NoopMetricsCollector) RecordPrepare()       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and strategy comparison without external dependencies.
type BasicMetricsCollector struct {
	AddInsertedCount      atomic.Int64
	AddReprioritizedCount atomic.Int64
	AddIgnoredCount       atomic.Int64
	PopCount              atomic.Int64
	PopErrors             atomic.Int64
	PrepareCount          atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(outcome AddOutcome) {
	switch outcome {
	case AddInserted:
		b.AddInsertedCount.Add(1)
	case AddReprioritized:
		b.AddReprioritizedCount.Add(1)
	case AddIgnored:
		b.AddIgnoredCount.Add(1)
	}
}

// RecordPop implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPop(err error) {
	b.PopCount.Add(1)
	if err != nil {
		b.PopErrors.Add(1)
	}
}

// RecordPrepare implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPrepare() {
	b.PrepareCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddInserted:      b.AddInsertedCount.Load(),
		AddReprioritized: b.AddReprioritizedCount.Load(),
		AddIgnored:       b.AddIgnoredCount.Load(),
		PopCount:         b.PopCount.Load(),
		PopErrors:        b.PopErrors.Load(),
		PrepareCount:     b.PrepareCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddInserted      int64
	AddReprioritized int64
	AddIgnored       int64
	PopCount         int64
	PopErrors        int64
	PrepareCount     int64
}
