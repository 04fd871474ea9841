// Package budgeters provides the core logic for a personal budget ledger.
// It is designed to be local-first and auditable: every figure shown to the
// user can be recomputed from the flat transaction record it came from.
//
// The core functionalities include:
//   - Entity Store: the in-memory Book holding accounts, budget categories,
//     and the transactions of the current period.
//   - Recompute: folding the full transaction record into per-account and
//     per-category totals, with exact decimal arithmetic.
//   - Referential Integrity: transactions reference accounts and categories
//     by name, so renames cascade and deletions tombstone the references.
//   - Rollover: closing a month, persisting its snapshot, and seeding the
//     next month with one carry-forward transaction per account.
//   - Data Persistence: encoding and decoding each collection to the
//     human-readable, version-controllable .cls line format.
//
// This package serves as the foundational logic for the `bgt` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package budgeters
