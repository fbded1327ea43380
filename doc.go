// Package cashbook is a personal finance ledger.
//
// Transactions are dated, signed amounts: negative for expenses, positive for
// incomes. They are recorded in a Ledger, which rejects future dates and zero
// amounts.
//
// An Aggregator derives a State from the ledger on demand:
//   - the running balance, over transactions sorted chronologically,
//   - the number of expenses and incomes,
//   - the balance at the end of each day, and the net change of each day,
//   - the lowest and highest end of day balances.
//
// Nothing is maintained incrementally: each Aggregator.Recompute starts from
// scratch. Nothing is persisted either: a ledger lives as long as the process.
//
// This package serves as the foundational logic for the `cb` command-line
// tool; the renderer and chart packages present its results.
package cashbook
