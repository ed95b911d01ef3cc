// Package ghino provides the types and functions for tracking personal
// informal debts between a user and their contacts. It is designed to be
// local-first and auditable: all records live in an embedded database the
// user owns, and every report is recomputed from a full snapshot.
//
// The core functionalities include:
//   - Debt Recording: debit ("owed to me") and credit ("I owe") transactions
//     with partial payments recorded against them.
//   - Ledger Aggregation: pure functions turning a snapshot of transactions
//     and payments into per-contact balances, gross activity statistics,
//     global totals, and time-bucketed (day/week/month/year) volumes.
//   - Reminders: one-shot delayed notifications for transactions flagged
//     for follow-up.
//   - Export and Sync: spreadsheet and PDF exports of the full history, and
//     reconciling sync against a remote sheet service.
//
// This package serves as the foundational logic for the `gho` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package ghino
