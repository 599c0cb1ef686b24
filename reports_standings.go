package elections

import (
	"slices"
	"strings"
)

// Standings is the detailed result table of one riding in one election.
type Standings struct {
	Date   Date
	Riding string
	Total  int
	Rows   []StandingsRow
}

// StandingsRow is the result of one party in a riding.
type StandingsRow struct {
	Party  string
	Votes  int
	Share  Percent
	Winner bool
}

// NewStandings computes the standings of a riding. Rows are ordered by
// votes, then by party name. An unknown riding yields empty standings, not
// an error: no recorded votes means no standings yet.
func NewStandings(e *Election, riding string) *Standings {
	standings := &Standings{
		Date:   e.Date(),
		Riding: riding,
		Total:  e.RidingTotal(riding),
	}

	winners := e.RidingWinners(riding)
	for party, votes := range e.results[riding] {
		standings.Rows = append(standings.Rows, StandingsRow{
			Party:  party,
			Votes:  votes,
			Share:  voteShare(votes, standings.Total),
			Winner: slices.Contains(winners, party),
		})
	}
	slices.SortFunc(standings.Rows, func(a, b StandingsRow) int {
		if a.Votes != b.Votes {
			return b.Votes - a.Votes
		}
		return strings.Compare(a.Party, b.Party)
	})
	return standings
}
