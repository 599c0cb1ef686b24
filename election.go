package elections

import (
	"iter"
	"maps"
	"slices"
)

// Election tallies the votes of a single election in a parliamentary
// democracy.
//
// Vote counts are grouped by riding, then by party. A riding or a party is
// known to the election as soon as one vote has been recorded for it, and
// never forgotten. Counts only ever grow: updates are additive deltas, and
// non-positive deltas are ignored.
//
// Invariants:
//   - a riding is known iff it is a key of results.
//   - a party is known iff it has votes recorded in at least one riding.
//   - every stored vote count is strictly positive.
type Election struct {
	date    Date
	parties map[string]struct{}       // index of every party ever seen
	results map[string]map[string]int // riding -> party -> votes
}

// NewElection creates an empty election held on the given date, with no
// ridings, parties, or votes recorded so far.
func NewElection(on Date) *Election {
	return &Election{
		date:    on,
		parties: make(map[string]struct{}),
		results: make(map[string]map[string]int),
	}
}

// Date returns the date this election was held on.
func (e *Election) Date() Date { return e.date }

// UpdateResults updates this election to reflect that in riding, party
// received votes additional votes.
//
// The riding may or may not already have votes recorded in this election,
// and the party may or may not already have votes recorded in this riding.
// Calls with votes <= 0 are ignored: votes are additive ballot counts, a
// non-positive delta is meaningless and must never decrement a total.
func (e *Election) UpdateResults(riding, party string, votes int) {
	if votes <= 0 {
		return
	}
	e.parties[party] = struct{}{}
	row, ok := e.results[riding]
	if !ok {
		row = make(map[string]int)
		e.results[riding] = row
	}
	row[party] += votes
}

// ResultsFor returns the number of votes recorded for party in riding.
//
// An unknown riding or party is not an error: no recorded votes means zero
// ballots counted, so ResultsFor returns 0.
func (e *Election) ResultsFor(riding, party string) int {
	return e.results[riding][party]
}

// RidingWinners returns the parties that received the maximum number of
// votes in riding. Ties are not resolved: every party at the maximum is
// included. The result is sorted for determinism, and empty if the riding
// has no recorded votes.
func (e *Election) RidingWinners(riding string) []string {
	row := e.results[riding]
	top := 0
	for _, votes := range row {
		if votes > top {
			top = votes
		}
	}
	winners := []string{}
	for party, votes := range row {
		if votes == top {
			winners = append(winners, party)
		}
	}
	slices.Sort(winners)
	return winners
}

// PartySeats returns, for every party known to this election, the number of
// ridings won by that party. A party tied for first in a riding counts as
// winning a seat there, so tied ridings award one seat per co-leader.
// Parties with zero seats are included in the result.
func (e *Election) PartySeats() map[string]int {
	seats := make(map[string]int, len(e.parties))
	for party := range e.parties {
		seats[party] = 0
	}
	for riding := range e.results {
		for _, winner := range e.RidingWinners(riding) {
			seats[winner]++
		}
	}
	return seats
}

// PopularVote returns, for every party known to this election, its total
// number of votes across all ridings. Parties with a zero total are
// included in the result.
func (e *Election) PopularVote() map[string]int {
	votes := make(map[string]int, len(e.parties))
	for party := range e.parties {
		votes[party] = 0
	}
	for _, row := range e.results {
		for party, count := range row {
			votes[party] += count
		}
	}
	return votes
}

// TotalVotes returns the total number of ballots recorded in this election.
func (e *Election) TotalVotes() int {
	total := 0
	for _, row := range e.results {
		for _, count := range row {
			total += count
		}
	}
	return total
}

// RidingTotal returns the total number of ballots recorded in riding.
func (e *Election) RidingTotal(riding string) int {
	total := 0
	for _, count := range e.results[riding] {
		total += count
	}
	return total
}

// Ridings iterates over the ridings with recorded votes, in sorted order.
func (e *Election) Ridings() iter.Seq[string] {
	return func(yield func(string) bool) {
		ridings := slices.Collect(maps.Keys(e.results))
		slices.Sort(ridings)
		for _, riding := range ridings {
			if !yield(riding) {
				return
			}
		}
	}
}

// Parties iterates over the parties with recorded votes, in sorted order.
func (e *Election) Parties() iter.Seq[string] {
	return func(yield func(string) bool) {
		parties := slices.Collect(maps.Keys(e.parties))
		slices.Sort(parties)
		for _, party := range parties {
			if !yield(party) {
				return
			}
		}
	}
}
