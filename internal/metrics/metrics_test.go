package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksUpstreamCallsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordUpstreamCall("towns", 200, 10*time.Millisecond, nil)
	rec.RecordUpstreamCall("towns", 500, 15*time.Millisecond, errors.New("boom"))

	if got := rec.UpstreamCalls("towns"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.UpstreamErrors("towns"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("towns")
	if snap.LastStatus != 500 || snap.LastLatency != 15*time.Millisecond {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if empty := rec.Snapshot("unknown"); empty != (Snapshot{}) {
		t.Fatalf("expected zero snapshot for unknown endpoint, got %+v", empty)
	}
}

func TestRecorderTracksCoalescedAndFallbacks(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCoalesced("top3")
	rec.RecordCoalesced("top3")
	rec.RecordVoteFallback("postgres")

	if got := rec.Snapshot("top3").Coalesced; got != 2 {
		t.Fatalf("expected 2 coalesced callers, got %d", got)
	}
	if got := rec.VoteFallbacks("postgres"); got != 1 {
		t.Fatalf("expected 1 fallback, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordUpstreamCall("towns", 200, time.Millisecond, nil)
	rec.RecordCoalesced("towns")
	rec.RecordVoteFallback("memory")
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	rec.RecordProbeCycle(time.Millisecond, nil)

	if rec.UpstreamCalls("towns") != 0 || rec.VoteFallbacks("memory") != 0 {
		t.Fatal("expected zero values from nil recorder")
	}
}

func TestRecorderConcurrentUse(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordUpstreamCall("towns", 200, time.Millisecond, nil)
			rec.RecordVoteFallback("memory")
		}()
	}
	wg.Wait()

	if got := rec.UpstreamCalls("towns"); got != 50 {
		t.Fatalf("expected 50 calls, got %d", got)
	}
	if got := rec.VoteFallbacks("memory"); got != 50 {
		t.Fatalf("expected 50 fallbacks, got %d", got)
	}
}
