package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// Upstream is a fake external API that counts the requests it receives.
type Upstream struct {
	*httptest.Server
	calls atomic.Int32
}

// NewUpstream starts h behind an httptest server closed at test cleanup.
func NewUpstream(t *testing.T, h http.Handler) *Upstream {
	t.Helper()
	u := &Upstream{}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.calls.Add(1)
		h.ServeHTTP(w, r)
	}))
	t.Cleanup(u.Close)
	return u
}

// Calls reports how many requests reached the fake.
func (u *Upstream) Calls() int {
	return int(u.calls.Load())
}

// JSON replies with status and a literal JSON body.
func JSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
