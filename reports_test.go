package elections

import (
	"reflect"
	"testing"
	"time"
)

func sampleElection() *Election {
	e := NewElection(NewDate(2015, time.October, 19))
	e.UpdateResults("r1", "ndp", 1234)
	e.UpdateResults("r1", "lib", 1345)
	e.UpdateResults("r1", "pc", 1456)
	e.UpdateResults("r2", "pc", 1)
	return e
}

func TestNewSummary(t *testing.T) {
	s := NewSummary(sampleElection())

	if s.Ridings != 2 {
		t.Errorf("Ridings = %d, want 2", s.Ridings)
	}
	if s.TotalVotes != 4036 {
		t.Errorf("TotalVotes = %d, want 4036", s.TotalVotes)
	}

	wantOrder := []string{"pc", "lib", "ndp"}
	gotOrder := []string{}
	for _, row := range s.Rows {
		gotOrder = append(gotOrder, row.Party)
	}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Fatalf("row order = %v, want %v", gotOrder, wantOrder)
	}

	testCases := []struct {
		party string
		seats int
		votes int
		share Percent
	}{
		{party: "pc", seats: 2, votes: 1457, share: 36.10},
		{party: "lib", seats: 0, votes: 1345, share: 33.33},
		{party: "ndp", seats: 0, votes: 1234, share: 30.57},
	}
	for i, tc := range testCases {
		row := s.Rows[i]
		if row.Seats != tc.seats {
			t.Errorf("%s seats = %d, want %d", tc.party, row.Seats, tc.seats)
		}
		if row.Votes != tc.votes {
			t.Errorf("%s votes = %d, want %d", tc.party, row.Votes, tc.votes)
		}
		if !row.Share.Equal(tc.share) {
			t.Errorf("%s share = %s, want %s", tc.party, row.Share, tc.share)
		}
	}
}

func TestNewSummary_Empty(t *testing.T) {
	s := NewSummary(NewElection(NewDate(2015, time.October, 19)))
	if s.Ridings != 0 || s.TotalVotes != 0 || len(s.Rows) != 0 {
		t.Errorf("summary of empty election = %+v, want all zero", s)
	}
}

func TestNewStandings(t *testing.T) {
	s := NewStandings(sampleElection(), "r1")

	if s.Total != 4035 {
		t.Errorf("Total = %d, want 4035", s.Total)
	}

	want := []StandingsRow{
		{Party: "pc", Votes: 1456, Share: 36.08, Winner: true},
		{Party: "lib", Votes: 1345, Share: 33.33, Winner: false},
		{Party: "ndp", Votes: 1234, Share: 30.58, Winner: false},
	}
	if len(s.Rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(s.Rows), len(want))
	}
	for i, w := range want {
		got := s.Rows[i]
		if got.Party != w.Party || got.Votes != w.Votes || got.Winner != w.Winner {
			t.Errorf("row %d = %+v, want %+v", i, got, w)
		}
		if !got.Share.Equal(w.Share) {
			t.Errorf("row %d share = %s, want %s", i, got.Share, w.Share)
		}
	}
}

func TestNewStandings_TieMarksAllWinners(t *testing.T) {
	e := NewElection(NewDate(2015, time.October, 19))
	e.UpdateResults("r1", "lib", 1456)
	e.UpdateResults("r1", "pc", 1456)
	e.UpdateResults("r1", "ndp", 3)

	s := NewStandings(e, "r1")
	for _, row := range s.Rows {
		want := row.Party != "ndp"
		if row.Winner != want {
			t.Errorf("%s winner = %v, want %v", row.Party, row.Winner, want)
		}
	}
}

func TestNewStandings_UnknownRiding(t *testing.T) {
	s := NewStandings(sampleElection(), "nonexistent")
	if s.Total != 0 || len(s.Rows) != 0 {
		t.Errorf("standings of unknown riding = %+v, want empty", s)
	}
}
