package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// seatsCmd holds the flags for the 'seats' subcommand.
type seatsCmd struct {
	date string
}

func (*seatsCmd) Name() string     { return "seats" }
func (*seatsCmd) Synopsis() string { return "print the number of ridings won by each party" }
func (*seatsCmd) Usage() string {
	return `ecs seats [-d <date>]

  Prints the seat count of every party, zero-seat parties included. In a
  tied riding every co-leader counts as winning the seat.
`
}

func (c *seatsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the election. Defaults to the most recent one.")
}

func (c *seatsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	seats := e.PartySeats()
	for party := range e.Parties() {
		fmt.Printf("%s: %d\n", party, seats[party])
	}
	return subcommands.ExitSuccess
}
