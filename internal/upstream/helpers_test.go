package upstream

import (
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/preston-bernstein/election-gateway/internal/metrics"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

// newTestClient routes every request through rt and counts calls.
func newTestClient(t *testing.T, rt roundTripperFunc) (*Client, *atomic.Int32, *metrics.Recorder) {
	t.Helper()
	var calls atomic.Int32
	rec := metrics.NewRecorder()
	c, err := NewClient(Config{
		BaseURL: "http://api.test/api/",
		Timeout: time.Second,
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			calls.Add(1)
			return rt(req)
		})},
		Recorder: rec,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c, &calls, rec
}
