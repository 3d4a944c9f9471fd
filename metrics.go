package authcore

import "sync/atomic"

// MetricID identifies a counter in the in-process metrics set.
type MetricID uint16

const (
	// MetricLoginSuccess counts attempts that ended with an issued token.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure counts denials of any reason.
	MetricLoginFailure
	// MetricLoginRateLimited counts attempts rejected by the limiter.
	MetricLoginRateLimited
	// MetricOtpRequired counts attempts deferred for a second factor.
	MetricOtpRequired
	// MetricTokenIssued counts signed tokens produced.
	MetricTokenIssued
	// MetricDummyCheck counts attempts where no record was found and the
	// verifier ran its timing-equalizing comparison instead.
	MetricDummyCheck

	metricIDCount
)

// Metrics holds atomic counters. When disabled, all operations are
// no-ops.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]atomic.Uint64
}

func newMetrics(enabled bool) *Metrics {
	return &Metrics{enabled: enabled}
}

func (m *Metrics) inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	m.counters[id].Add(1)
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot map[MetricID]uint64

// Snapshot copies the current counter values. Returns an empty snapshot
// when metrics are disabled.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := make(MetricsSnapshot, metricIDCount)
	if m == nil || !m.enabled {
		return snap
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		snap[id] = m.counters[id].Load()
	}
	return snap
}
