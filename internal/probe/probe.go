// Package probe checks upstream reachability in the background so /ready can
// answer without calling the external API inline.
package probe

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/election-gateway/internal/credentials"
	"github.com/preston-bernstein/election-gateway/internal/domain"
	"github.com/preston-bernstein/election-gateway/internal/logging"
	"github.com/preston-bernstein/election-gateway/internal/metrics"
)

const (
	defaultInterval = 30 * time.Second
	maxFailures     = 3
)

// StatusFetcher is the gateway call the probe exercises.
type StatusFetcher interface {
	ElectionStatus(ctx context.Context, creds credentials.Provider) (domain.ElectionStatus, error)
}

// Probe calls the public election status endpoint on an interval. The result is
// only used for readiness and is never served to API clients.
type Probe struct {
	fetcher  StatusFetcher
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the upstream.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the probe has had a success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < maxFailures
}

func New(fetcher StatusFetcher, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Probe {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Probe{
		fetcher:  fetcher,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start probes immediately and then on every tick until ctx ends or Stop is called.
func (p *Probe) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "probe started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		p.checkOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "probe stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "probe stopped")
				return
			case <-p.ticker.C:
				p.checkOnce(ctx)
			}
		}
	}()
}

// Stop halts the loop. Safe to call more than once.
func (p *Probe) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Probe) checkOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	_, err := p.fetcher.ElectionStatus(ctx, credentials.Anonymous)
	elapsed := time.Since(start)
	p.metrics.RecordProbeCycle(elapsed, err)
	if err != nil {
		logging.Warn(p.logger, "probe failed",
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		p.recordFailure(err, start)
		return
	}
	p.recordSuccess(start)
	logging.Debug(p.logger, "probe ok", slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
}

func (p *Probe) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Probe) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Probe) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Probe) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a copy of the probe's recent health.
func (p *Probe) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
