package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type searchStats struct {
	requests      int
	failures      int
	invalid       int
	staleDiscards int
	lastLatency   time.Duration
}

// Search outcomes recorded per request.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeInvalid = "invalid"
)

// Recorder captures lightweight, in-memory metrics about provider calls and
// searches, mirrored to OpenTelemetry instruments when configured.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*providerStats
	searches map[string]*searchStats
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:    make(map[string]*providerStats),
		searches: make(map[string]*searchStats),
		otel:     otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordSearch tracks a completed search of the given kind and its outcome.
func (r *Recorder) RecordSearch(kind, outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureSearch(kind)
	stats.requests++
	stats.lastLatency = duration
	switch outcome {
	case OutcomeError:
		stats.failures++
	case OutcomeInvalid:
		stats.invalid++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSearch(kind, outcome, duration)
	}
}

// RecordStaleDiscard tracks a search result dropped because a newer search was issued.
func (r *Recorder) RecordStaleDiscard(kind string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureSearch(kind).staleDiscards++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStaleDiscard(kind)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// SearchSnapshot is a copy of the stats for one search kind.
type SearchSnapshot struct {
	Requests      int
	Failures      int
	Invalid       int
	StaleDiscards int
	LastLatency   time.Duration
}

// Search returns a copy of the current stats for a search kind.
func (r *Recorder) Search(kind string) SearchSnapshot {
	if r == nil {
		return SearchSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.searches[kind]
	if !ok || stats == nil {
		return SearchSnapshot{}
	}
	return SearchSnapshot{
		Requests:      stats.requests,
		Failures:      stats.failures,
		Invalid:       stats.invalid,
		StaleDiscards: stats.staleDiscards,
		LastLatency:   stats.lastLatency,
	}
}

// callers hold r.mu
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

// callers hold r.mu
func (r *Recorder) ensureSearch(kind string) *searchStats {
	stats, ok := r.searches[kind]
	if !ok {
		stats = &searchStats{}
		r.searches[kind] = stats
	}
	return stats
}
