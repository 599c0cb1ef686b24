// Package cmd implements the CLI application to manage an election history.
//
// It is the external collaborator of the elections package: it discovers
// and opens files, parses arguments, and feeds raw rows to the core, which
// does none of that itself.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/elections"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "history")
	c.Register(&listCmd{}, "history")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&standingsCmd{}, "reports")
	c.Register(&winnersCmd{}, "reports")
	c.Register(&seatsCmd{}, "reports")
	c.Register(&popularCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var historyFile = flag.String("history-file", "elections.jsonl", "Path to the election history file (JSONL format)")
var jurisdictionName = flag.String("jurisdiction", "Canada", "Name of the jurisdiction the history belongs to")

// DecodeHistory loads the election history from the app history file.
func DecodeHistory() (*elections.Jurisdiction, error) {
	f, err := os.Open(*historyFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, history file does not exist, starting an empty history instead")
		return elections.NewJurisdiction(*jurisdictionName), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open history file %q: %w", *historyFile, err)
	}
	defer f.Close()
	return elections.DecodeElections(f, *jurisdictionName)
}

// EncodeHistory writes the election history back into the app history file.
func EncodeHistory(j *elections.Jurisdiction) error {
	f, err := os.Create(*historyFile)
	if err != nil {
		return fmt.Errorf("cannot create history file %q: %w", *historyFile, err)
	}
	defer f.Close()
	return elections.EncodeElections(f, j)
}

// electionOn returns the election to report on: the one held on the given
// date, or the most recent one when the date is left empty.
func electionOn(j *elections.Jurisdiction, date string) (*elections.Election, error) {
	if date == "" {
		var latest *elections.Election
		for e := range j.Elections() {
			latest = e
		}
		if latest == nil {
			return nil, fmt.Errorf("the election history of %s is empty", j.Name())
		}
		return latest, nil
	}

	on, err := elections.ParseDate(date)
	if err != nil {
		return nil, err
	}
	e, ok := j.Election(on)
	if !ok {
		return nil, fmt.Errorf("no election on %s in the history of %s", on, j.Name())
	}
	return e, nil
}
