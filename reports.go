package elections

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Summary provides an at-a-glance overview of a single election's outcome:
// seats, popular vote and vote share for every known party.
type Summary struct {
	Date       Date
	Ridings    int
	TotalVotes int
	Rows       []SummaryRow
}

// SummaryRow is the outcome of one party in a Summary.
type SummaryRow struct {
	Party string
	Seats int
	Votes int
	Share Percent
}

// NewSummary computes the summary of an election. Rows are ordered by seats
// won, then by popular vote, then by party name, so the winning party comes
// first.
func NewSummary(e *Election) *Summary {
	seats := e.PartySeats()
	popular := e.PopularVote()

	summary := &Summary{
		Date:       e.Date(),
		TotalVotes: e.TotalVotes(),
	}
	for range e.Ridings() {
		summary.Ridings++
	}

	for party := range e.Parties() {
		summary.Rows = append(summary.Rows, SummaryRow{
			Party: party,
			Seats: seats[party],
			Votes: popular[party],
			Share: voteShare(popular[party], summary.TotalVotes),
		})
	}
	slices.SortFunc(summary.Rows, func(a, b SummaryRow) int {
		if a.Seats != b.Seats {
			return b.Seats - a.Seats
		}
		if a.Votes != b.Votes {
			return b.Votes - a.Votes
		}
		return strings.Compare(a.Party, b.Party)
	})
	return summary
}

// voteShare returns votes over total as a percentage, rounded to two
// decimal places.
func voteShare(votes, total int) Percent {
	if total == 0 {
		return 0
	}
	share := decimal.NewFromInt(int64(votes)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
	f, _ := share.Float64()
	return Percent(f)
}
