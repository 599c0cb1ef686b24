package elections

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Column numbers where the values of interest can be found in the raw
// results format. The format is an external contract: fields are comma
// separated and these indices are fixed, no general CSV handling is
// attempted.
const (
	ridingColumn = 1
	partyColumn  = 13
	votesColumn  = 17
)

// Jurisdiction holds the election history of a jurisdiction that is a
// parliamentary democracy: one Election per election date.
type Jurisdiction struct {
	name      string
	elections map[Date]*Election
}

// NewJurisdiction creates a jurisdiction with no elections so far.
func NewJurisdiction(name string) *Jurisdiction {
	return &Jurisdiction{
		name:      name,
		elections: make(map[Date]*Election),
	}
}

// Name returns the name of this jurisdiction.
func (j *Jurisdiction) Name() string { return j.name }

// RegisterElection adds an election to the history. There is exactly one
// election per date: registering a second election on the same date is an
// error, the history never loses a recorded tally.
func (j *Jurisdiction) RegisterElection(e *Election) error {
	if _, exists := j.elections[e.Date()]; exists {
		return fmt.Errorf("an election on %s is already registered in %s", e.Date(), j.name)
	}
	j.elections[e.Date()] = e
	return nil
}

// Election returns the election held on the given date, if any.
func (j *Jurisdiction) Election(on Date) (*Election, bool) {
	e, ok := j.elections[on]
	return e, ok
}

// Elections iterates over the election history in chronological order.
func (j *Jurisdiction) Elections() iter.Seq[*Election] {
	return func(yield func(*Election) bool) {
		dates := slices.Collect(maps.Keys(j.elections))
		slices.SortFunc(dates, func(a, b Date) int {
			switch {
			case a.Before(b):
				return -1
			case a.After(b):
				return 1
			default:
				return 0
			}
		})
		for _, on := range dates {
			if !yield(j.elections[on]) {
				return
			}
		}
	}
}

// ReadResults reads raw result rows from r and applies them to the election
// held on the given date.
//
// The source is line oriented: one header line to skip, then one row per
// line with the riding name, party name and vote count at the fixed column
// indices of the raw results format. Reading stops at end of input only.
//
// The election must have been registered before calling ReadResults. A
// malformed row (too few fields, non-numeric vote count) is fatal to the
// call; rows applied before the failure remain applied. The caller owns r
// and is responsible for closing it.
func (j *Jurisdiction) ReadResults(year int, month time.Month, day int, r io.Reader) error {
	on := NewDate(year, month, day)
	e, ok := j.elections[on]
	if !ok {
		return fmt.Errorf("no election registered on %s in %s", on, j.name)
	}

	in := bufio.NewReader(r)
	// Skip the header line.
	if _, err := in.ReadString('\n'); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("cannot read results header: %w", err)
	}

	for {
		line, err := in.ReadString('\n')
		if line != "" {
			riding, party, votes, perr := parseResultsRow(line)
			if perr != nil {
				return fmt.Errorf("cannot parse results row %q: %w", strings.TrimSuffix(line, "\n"), perr)
			}
			e.UpdateResults(riding, party, votes)
		}
		if err == io.EOF {
			// An empty read is the only termination condition.
			return nil
		}
		if err != nil {
			return fmt.Errorf("cannot read results row: %w", err)
		}
	}
}

// parseResultsRow extracts the riding, party and vote count from one row of
// the raw results format. Riding and party may be wrapped in quotes, and the
// vote count may carry a trailing newline.
func parseResultsRow(line string) (riding, party string, votes int, err error) {
	fields := strings.Split(line, ",")
	if len(fields) <= votesColumn {
		return "", "", 0, fmt.Errorf("want at least %d fields, got %d", votesColumn+1, len(fields))
	}
	riding = strings.Trim(fields[ridingColumn], `"`)
	party = strings.Trim(fields[partyColumn], `"`)
	votes, err = strconv.Atoi(strings.TrimSpace(fields[votesColumn]))
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid vote count %q: %w", strings.TrimSpace(fields[votesColumn]), err)
	}
	return riding, party, votes, nil
}
