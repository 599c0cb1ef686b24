package elections

import (
	"strings"
	"testing"
	"time"
)

func TestElection_ReadFeed_Default(t *testing.T) {
	in := `{
	  "generated": "2015-10-20T03:00:00Z",
	  "results": [
	    {"riding": "r1", "party": "ndp", "votes": 1234},
	    {"riding": "r1", "party": "lib", "votes": 1345},
	    {"riding": "r1", "party": "pc", "votes": 1456},
	    {"riding": "r2", "party": "pc", "votes": 1}
	  ]
	}`

	e := NewElection(NewDate(2015, time.October, 19))
	if err := e.ReadFeed(strings.NewReader(in), DefaultFeed); err != nil {
		t.Fatalf("ReadFeed() = %v, want nil", err)
	}

	if got := e.ResultsFor("r1", "lib"); got != 1345 {
		t.Errorf("ResultsFor(r1, lib) = %d, want 1345", got)
	}
	want := map[string]int{"ndp": 0, "lib": 0, "pc": 2}
	got := e.PartySeats()
	for party, seats := range want {
		if got[party] != seats {
			t.Errorf("PartySeats()[%q] = %d, want %d", party, got[party], seats)
		}
	}
}

func TestElection_ReadFeed_CustomPaths(t *testing.T) {
	in := `{"data": {"rows": [
	  {"district": {"name": "r1"}, "list": "pc", "count": 42}
	]}}`
	feed := Feed{
		Rows:   "$.data.rows[*]",
		Riding: "$.district.name",
		Party:  "$.list",
		Votes:  "$.count",
	}

	e := NewElection(NewDate(2015, time.October, 19))
	if err := e.ReadFeed(strings.NewReader(in), feed); err != nil {
		t.Fatalf("ReadFeed() = %v, want nil", err)
	}
	if got := e.ResultsFor("r1", "pc"); got != 42 {
		t.Errorf("ResultsFor(r1, pc) = %d, want 42", got)
	}
}

func TestElection_ReadFeed_Errors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{name: "not json", in: "<results/>"},
		{name: "missing rows", in: `{"other": []}`},
		{name: "votes not a number", in: `{"results":[{"riding":"r1","party":"pc","votes":"many"}]}`},
		{name: "riding not a string", in: `{"results":[{"riding":7,"party":"pc","votes":3}]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewElection(NewDate(2015, time.October, 19))
			if err := e.ReadFeed(strings.NewReader(tc.in), DefaultFeed); err == nil {
				t.Errorf("ReadFeed() = nil, want an error")
			}
		})
	}
}
