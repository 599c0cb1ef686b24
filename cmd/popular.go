package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// popularCmd holds the flags for the 'popular' subcommand.
type popularCmd struct {
	date string
}

func (*popularCmd) Name() string     { return "popular" }
func (*popularCmd) Synopsis() string { return "print the popular vote of each party" }
func (*popularCmd) Usage() string {
	return `ecs popular [-d <date>]

  Prints the total number of votes received by every party across all
  ridings, zero-vote parties included.
`
}

func (c *popularCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the election. Defaults to the most recent one.")
}

func (c *popularCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	votes := e.PopularVote()
	for party := range e.Parties() {
		fmt.Printf("%s: %d\n", party, votes[party])
	}
	return subcommands.ExitSuccess
}
