package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls       int
	errors      int
	coalesced   int
	lastStatus  int
	lastLatency time.Duration
}

// Recorder keeps in-memory counters per upstream endpoint and forwards to OTel when configured.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	mu            sync.Mutex
	stats         map[string]*endpointStats
	voteFallbacks map[string]int
	otel          *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:         make(map[string]*endpointStats),
		voteFallbacks: make(map[string]int),
		otel:          otel,
	}
}

// RecordUpstreamCall counts one call to the external API. status is 0 when no response arrived.
func (r *Recorder) RecordUpstreamCall(endpoint string, status int, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(endpoint)
	stats.calls++
	stats.lastStatus = status
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(endpoint, status, duration, err)
	}
}

// RecordCoalesced counts a caller that shared another caller's in-flight upstream result.
func (r *Recorder) RecordCoalesced(endpoint string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureStats(endpoint).coalesced++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCoalesced(endpoint)
	}
}

// RecordVoteFallback counts a town whose vote count defaulted to 0.
func (r *Recorder) RecordVoteFallback(backend string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.voteFallbacks[backend]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordVoteFallback(backend)
	}
}

// RecordHTTPRequest tracks inbound HTTP requests.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordProbeCycle tracks readiness probe cycles and errors.
func (r *Recorder) RecordProbeCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordProbe(duration, err)
}

// Snapshot is a copy of the counters for one upstream endpoint.
type Snapshot struct {
	Calls       int
	Errors      int
	Coalesced   int
	LastStatus  int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[endpoint]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		Coalesced:   stats.coalesced,
		LastStatus:  stats.lastStatus,
		LastLatency: stats.lastLatency,
	}
}

// UpstreamCalls returns the number of calls recorded for endpoint.
func (r *Recorder) UpstreamCalls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// UpstreamErrors returns the number of failed calls recorded for endpoint.
func (r *Recorder) UpstreamErrors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// VoteFallbacks returns how many lookups against backend defaulted to 0.
func (r *Recorder) VoteFallbacks(backend string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.voteFallbacks[backend]
}

// caller holds r.mu
func (r *Recorder) ensureStats(endpoint string) *endpointStats {
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	return stats
}
