package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// winnersCmd holds the flags for the 'winners' subcommand.
type winnersCmd struct {
	date string
}

func (*winnersCmd) Name() string     { return "winners" }
func (*winnersCmd) Synopsis() string { return "print the winning parties of one riding" }
func (*winnersCmd) Usage() string {
	return `ecs winners [-d <date>] <riding>

  Prints the parties with the most votes in a riding. Tied co-leaders are
  all printed.
`
}

func (c *winnersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the election. Defaults to the most recent one.")
}

func (c *winnersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	winners := e.RidingWinners(f.Arg(0))
	if len(winners) == 0 {
		fmt.Printf("no votes recorded in %q on %s\n", f.Arg(0), e.Date())
		return subcommands.ExitSuccess
	}
	fmt.Println(strings.Join(winners, ", "))
	return subcommands.ExitSuccess
}
