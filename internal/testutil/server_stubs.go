package testutil

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/preston-bernstein/election-gateway/internal/probe"
)

// StubProbe stands in for the readiness probe and counts lifecycle calls.
type StubProbe struct {
	Err       error
	StatusVal probe.Status

	starts atomic.Int32
	stops  atomic.Int32
}

func (p *StubProbe) Start(context.Context) { p.starts.Add(1) }

func (p *StubProbe) Stop(context.Context) error {
	p.stops.Add(1)
	return p.Err
}

func (p *StubProbe) Status() probe.Status { return p.StatusVal }
func (p *StubProbe) StartCalls() int      { return int(p.starts.Load()) }
func (p *StubProbe) StopCalls() int       { return int(p.stops.Load()) }

// StubHTTPServer stands in for the server's listener. ListenAndServe returns
// ListenErr (use http.ErrServerClosed for a clean exit). When Block is set,
// Shutdown waits for it to close or for ctx to end.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Block       chan struct{}

	listens   atomic.Int32
	shutdowns atomic.Int32
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.listens.Add(1)
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdowns.Add(1)
	if s.Block != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.Block:
		}
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NotFoundHandler()
	}
	return s.HandlerVal
}

func (s *StubHTTPServer) ListenCalls() int   { return int(s.listens.Load()) }
func (s *StubHTTPServer) ShutdownCalls() int { return int(s.shutdowns.Load()) }
