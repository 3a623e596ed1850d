package domain

import (
	"encoding/json"
	"testing"
)

func TestTownIDAcceptsStringsAndNumbers(t *testing.T) {
	cases := []struct {
		raw  string
		want TownID
	}{
		{`"t1"`, "t1"},
		{`42`, "42"},
		{`null`, ""},
	}
	for _, tc := range cases {
		var id TownID
		if err := json.Unmarshal([]byte(tc.raw), &id); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if id != tc.want {
			t.Fatalf("unmarshal %s: expected %q got %q", tc.raw, tc.want, id)
		}
	}
}

func TestTownIDRejectsObjects(t *testing.T) {
	var id TownID
	if err := json.Unmarshal([]byte(`{"id":1}`), &id); err == nil {
		t.Fatal("expected error for object id")
	}
}

func TestTownIDMarshalsAsString(t *testing.T) {
	raw, err := json.Marshal(Top3Town{Rank: 1, TownID: "7", Name: "A", Votes: 3})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"rank":1,"townId":"7","name":"A","votes":3}` {
		t.Fatalf("unexpected json %s", raw)
	}
}
