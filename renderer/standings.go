package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/elections"
	md "github.com/nao1215/markdown"
)

// StandingsMarkdown renders the standings of one riding as a markdown
// document. Winning parties are marked, co-leaders of a tied riding all are.
func StandingsMarkdown(s *elections.Standings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s on %s", s.Riding, s.Date))
	doc.PlainText(fmt.Sprintf("%d ballots counted", s.Total))

	rows := make([][]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		winner := ""
		if row.Winner {
			winner = "won"
		}
		rows = append(rows, []string{
			row.Party,
			strconv.Itoa(row.Votes),
			row.Share.String(),
			winner,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Party", "Votes", "Share", "Result"},
		Rows:   rows,
	})

	return doc.String()
}
