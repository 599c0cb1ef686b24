package elections

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// this file contains functions to handle the election history format.
// It should remain human readable, single file and be easy to merge.

// EncodeElections writes the jurisdiction's election history to 'w'.
//
// The format is a JSONL file, where each line is a JSON object representing
// one election: property 'date' contains the election date, and property
// 'results' contains one object per riding whose properties are party names
// and values are vote counts.
func EncodeElections(w io.Writer, j *Jurisdiction) error {
	type jelection struct {
		Date    Date                      `json:"date"`
		Results map[string]map[string]int `json:"results"`
	}

	for e := range j.Elections() {
		je := jelection{
			Date:    e.Date(),
			Results: e.results,
		}
		data, err := json.Marshal(je)
		if err != nil {
			return fmt.Errorf("cannot marshal election on %s: %w", e.Date(), err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write election history format: %w", err)
		}
	}
	return nil
}

// DecodeElections reads an election history for the named jurisdiction from
// 'r' in the format written by [EncodeElections].
//
// Counts are replayed through UpdateResults so that the decoded elections
// hold the same invariants as freshly tallied ones, whatever the file says.
func DecodeElections(r io.Reader, name string) (*Jurisdiction, error) {
	type jelection struct {
		Date    Date                      `json:"date"`
		Results map[string]map[string]int `json:"results"`
	}

	j := NewJurisdiction(name)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		var je jelection
		if err := json.Unmarshal([]byte(line), &je); err != nil {
			return nil, fmt.Errorf("cannot parse line for election history format: %q: %w", line, err)
		}
		e := NewElection(je.Date)
		for riding, row := range je.Results {
			for party, votes := range row {
				e.UpdateResults(riding, party, votes)
			}
		}
		if err := j.RegisterElection(e); err != nil {
			return nil, fmt.Errorf("cannot load election history: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read election history: %w", err)
	}
	return j, nil
}
