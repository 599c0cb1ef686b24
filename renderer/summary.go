// Package renderer turns election reports into markdown.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/elections"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders an election summary as a markdown document.
func SummaryMarkdown(s *elections.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Election Summary on %s", s.Date))
	doc.PlainText(fmt.Sprintf("%d ridings, %d ballots counted", s.Ridings, s.TotalVotes))

	doc.H2("Seats and Popular Vote")

	rows := make([][]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		rows = append(rows, []string{
			row.Party,
			strconv.Itoa(row.Seats),
			strconv.Itoa(row.Votes),
			row.Share.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Party", "Seats", "Votes", "Share"},
		Rows:   rows,
	})

	return doc.String()
}
