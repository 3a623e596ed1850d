package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/election-gateway/internal/testutil"
)

func TestRecovererWritesErrorEnvelope(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	h := NewHandler(nil, nil, logger, "admin_token", nil)
	panicking := h.Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("driver exploded")
	}))

	rr := testutil.Serve(panicking, http.MethodGet, "/api/towns", nil)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	var body map[string]any
	testutil.DecodeJSON(t, rr, &body)
	if len(body) != 1 || body["error"] != msgUnexpected {
		t.Fatalf("expected fallback envelope, got %v", body)
	}
	if !strings.Contains(buf.String(), "driver exploded") {
		t.Fatalf("expected panic value logged, got %q", buf.String())
	}
}

func TestRecovererReraisesAbortHandler(t *testing.T) {
	h := NewHandler(nil, nil, nil, "admin_token", nil)
	aborting := h.Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Fatalf("expected ErrAbortHandler to propagate, got %v", rec)
		}
	}()
	testutil.Serve(aborting, http.MethodGet, "/api/towns", nil)
}
