package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the elections in the history" }
func (*listCmd) Usage() string {
	return `ecs list

  Lists every election in the history in chronological order, with its
  riding, party and ballot counts.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, err := DecodeHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding history %q: %v\n", *historyFile, err)
		return subcommands.ExitFailure
	}

	count := 0
	for e := range j.Elections() {
		ridings, parties := 0, 0
		for range e.Ridings() {
			ridings++
		}
		for range e.Parties() {
			parties++
		}
		fmt.Printf("%s: %d ridings, %d parties, %d ballots\n", e.Date(), ridings, parties, e.TotalVotes())
		count++
	}
	if count == 0 {
		fmt.Printf("the election history of %s is empty\n", j.Name())
	}
	return subcommands.ExitSuccess
}
