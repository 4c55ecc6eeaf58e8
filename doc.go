// Package expenses provides the types and functions behind the exps
// expense tracker. It is local-first: the whole expense list lives in a
// single human-readable JSON file that is rewritten on every change.
//
// The core functionalities include:
//   - Expense records: a date, a description and an amount, all kept as
//     text, the amount normalized to two fraction digits.
//   - Record store: loading and atomically replacing the expense file.
//   - Backups: write-only, timestamped snapshots of the expense list.
//   - Field editing: replacing one field of a record with user input.
//   - Queries: evaluating JSONPath expressions against the stored list.
//
// This package serves as the foundational logic for the `exps`
// command-line tool; the interactive menu lives in package menu.
package expenses
