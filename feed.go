package elections

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// Feed describes where to find result rows in a JSON results feed, as
// published by election bodies on open data portals. Paths are JSONPath
// expressions: Rows selects the array of rows in the document, the other
// paths select fields within one row.
type Feed struct {
	Rows   string // path to the array of result rows
	Riding string // path to the riding name within a row
	Party  string // path to the party name within a row
	Votes  string // path to the vote count within a row
}

// DefaultFeed matches feeds shaped like
//
//	{"results": [{"riding": "r1", "party": "pc", "votes": 1456}, ...]}
var DefaultFeed = Feed{
	Rows:   "$.results[*]",
	Riding: "$.riding",
	Party:  "$.party",
	Votes:  "$.votes",
}

// ReadFeed reads a JSON results feed from r and applies every row to this
// election through UpdateResults. The caller owns r; no network access is
// performed here.
func (e *Election) ReadFeed(r io.Reader, feed Feed) error {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return fmt.Errorf("cannot decode results feed: %w", err)
	}

	jrows, err := feedValue(jobj, feed.Rows)
	if err != nil {
		return fmt.Errorf("cannot select feed rows: %w", err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		// a feed with a single row is still a valid feed
		rows = []any{jrows}
	}
	if len(rows) == 0 {
		return fmt.Errorf("no rows selected by %q in results feed", feed.Rows)
	}

	for i, row := range rows {
		riding, err := feedString(row, feed.Riding)
		if err != nil {
			return fmt.Errorf("invalid riding in feed row %d: %w", i, err)
		}
		party, err := feedString(row, feed.Party)
		if err != nil {
			return fmt.Errorf("invalid party in feed row %d: %w", i, err)
		}
		votes, err := feedNumber(row, feed.Votes)
		if err != nil {
			return fmt.Errorf("invalid vote count in feed row %d: %w", i, err)
		}
		e.UpdateResults(riding, party, int(votes))
	}
	return nil
}

// feedValue evaluates a JSONPath expression against a document fragment.
func feedValue(jobj any, path string) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	return jval, nil
}

func feedString(row any, path string) (string, error) {
	jval, err := feedValue(row, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string: %v", path, jval)
	}
	return s, nil
}

func feedNumber(row any, path string) (float64, error) {
	jval, err := feedValue(row, path)
	if err != nil {
		return 0, err
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%q is not a number: %v", path, jval)
	}
	return val, nil
}
