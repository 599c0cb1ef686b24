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

// standingsCmd holds the flags for the 'standings' subcommand.
type standingsCmd struct {
	date string
}

func (*standingsCmd) Name() string     { return "standings" }
func (*standingsCmd) Synopsis() string { return "display the detailed results of one riding" }
func (*standingsCmd) Usage() string {
	return `ecs standings [-d <date>] <riding>

  Displays the result table of one riding, winning parties marked.
`
}

func (c *standingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the election. Defaults to the most recent one.")
}

func (c *standingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(f.Args()) != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one riding name is required")
		return subcommands.ExitUsageError
	}

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

	printMarkdown(renderer.StandingsMarkdown(elections.NewStandings(e, f.Arg(0))))
	return subcommands.ExitSuccess
}
