package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/elections"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	date string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import raw results into the election history" }
func (*importCmd) Usage() string {
	return `ecs import -d <date> <results-file>...

  Reads raw results files (see 'ecs topic format') and adds their rows to
  the election held on the given date, registering the election on first
  use. Vote counts accumulate: importing twice doubles them.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the election the results belong to (e.g. 2015-10-19).")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: the election date is required (-d)")
		return subcommands.ExitUsageError
	}
	on, err := elections.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if len(f.Args()) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one results file is required")
		return subcommands.ExitUsageError
	}

	j, err := DecodeHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding history %q: %v\n", *historyFile, err)
		return subcommands.ExitFailure
	}

	if _, ok := j.Election(on); !ok {
		if err := j.RegisterElection(elections.NewElection(on)); err != nil {
			fmt.Fprintf(os.Stderr, "Error registering election: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	for _, filename := range f.Args() {
		if err := readResultsFile(j, on, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", filename, err)
			return subcommands.ExitFailure
		}
	}

	if err := EncodeHistory(j); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing history %q: %v\n", *historyFile, err)
		return subcommands.ExitFailure
	}

	e, _ := j.Election(on)
	fmt.Printf("Imported %d file(s) into the election on %s (%d ballots counted)\n",
		len(f.Args()), on, e.TotalVotes())
	return subcommands.ExitSuccess
}

// readResultsFile opens one raw results file and feeds it to the core.
func readResultsFile(j *elections.Jurisdiction, on elections.Date, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return j.ReadResults(on.Year(), on.Month(), on.Day(), file)
}
