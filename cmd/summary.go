package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/elections"
	"github.com/etnz/elections/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display seats, popular vote and share per party" }
func (*summaryCmd) Usage() string {
	return `ecs summary [-d <date>]

  Displays the outcome of an election: seats won, popular vote and vote
  share for every party.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the election. Defaults to the most recent one.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, err := DecodeHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding history %q: %v\n", *historyFile, err)
		return subcommands.ExitFailure
	}

	e, err := electionOn(j, c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(elections.NewSummary(e)))
	return subcommands.ExitSuccess
}
