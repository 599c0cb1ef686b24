// Package elections provides types for tallying and querying the election
// results of a parliamentary democracy.
//
// The core functionalities include:
//   - Vote Tallying: recording per-riding, per-party vote counts for a single
//     election through incremental, always-additive updates.
//   - Derived Queries: per-riding winners (ties included), party seat totals,
//     and jurisdiction-wide popular vote.
//   - Election History: a Jurisdiction keeps one Election per date and routes
//     raw result rows, read from a fixed-column text format, to the right one.
//   - Data Persistence: encoding and decoding an election history to and from
//     a human-readable JSONL format.
//   - Feeds: importing results from JSON feeds published by election bodies,
//     with configurable JSONPath field selectors.
//
// This package serves as the foundational logic for the `ecs` command-line
// tool; it performs no file discovery, argument handling, or network access
// of its own.
package elections
