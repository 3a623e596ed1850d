package domain

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestElectionModeValues(t *testing.T) {
	if ModeManual != "manual" || ModeScheduled != "scheduled" {
		t.Fatalf("unexpected mode values %q %q", ModeManual, ModeScheduled)
	}
}

func TestTownJSONTags(t *testing.T) {
	townType := reflect.TypeOf(Town{})
	fields := map[string]string{
		"ID":         "id",
		"Name":       "name",
		"Votes":      "votes",
		"Percentage": "percentage,omitempty",
	}
	for name, tag := range fields {
		f, ok := townType.FieldByName(name)
		if !ok {
			t.Fatalf("missing field %s", name)
		}
		if got := f.Tag.Get("json"); got != tag {
			t.Fatalf("field %s: expected tag %q got %q", name, tag, got)
		}
	}
}

func TestTownOmitsMissingPercentageButKeepsZeroVotes(t *testing.T) {
	raw, err := json.Marshal(Town{ID: "t1", Name: "A"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(raw)
	if strings.Contains(out, "percentage") {
		t.Fatalf("expected percentage omitted, got %s", out)
	}
	if !strings.Contains(out, `"votes":0`) {
		t.Fatalf("expected explicit zero votes, got %s", out)
	}
}

func TestElectionStatusOptionalFields(t *testing.T) {
	var st ElectionStatus
	if err := json.Unmarshal([]byte(`{"isOpen":true,"mode":"scheduled","startAt":"2025-01-01T08:00:00Z","timezone":"Asia/Riyadh"}`), &st); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !st.IsOpen || st.Mode != ModeScheduled {
		t.Fatalf("unexpected status %+v", st)
	}
	if st.StartAt == nil || st.EndAt != nil || st.Timezone == nil || *st.Timezone != "Asia/Riyadh" {
		t.Fatalf("unexpected optional fields %+v", st)
	}
}
