package cashbook

import (
	"fmt"

	"github.com/etnz/cashbook/date"
)

// Snapshot is a value observed on a given day.
type Snapshot struct {
	Day   date.Date `json:"day"`
	Value Amount    `json:"value"`
}

// Label returns the day as used on chart axes.
func (s Snapshot) Label() string { return s.Day.String() }

// State is everything derived from the ledger by a single Aggregator.Recompute.
type State struct {
	Balance  Amount // sum of all amounts
	Expenses int    // number of negative transactions
	Incomes  int    // number of positive transactions

	// Lowest and Highest end of day balances, nil when there are no transactions.
	// On ties, the earliest day is kept.
	Lowest  *Snapshot
	Highest *Snapshot

	// BalanceHistory holds the balance at the end of each day with transactions, in chronological order.
	BalanceHistory []Snapshot
	// DailyNetChange holds the sum of amounts of each day with transactions, in chronological order.
	DailyNetChange []Snapshot
}

// Count returns the number of transactions the state was computed from.
func (s State) Count() int { return s.Expenses + s.Incomes }

// IsEmpty reports whether the state was computed from no transactions at all.
func (s State) IsEmpty() bool { return len(s.BalanceHistory) == 0 }

// Extrema returns the lowest and highest end of day balances, or ErrNoData.
func (s State) Extrema() (lowest, highest Snapshot, err error) {
	if s.Lowest == nil || s.Highest == nil {
		return Snapshot{}, Snapshot{}, fmt.Errorf("%w: no balance recorded yet", ErrNoData)
	}
	return *s.Lowest, *s.Highest, nil
}

// MarshalJSON writes the state with a stable field order; extrema are omitted when unset.
func (s State) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("balance", s.Balance)
	w.Append("expenses", s.Expenses)
	w.Append("incomes", s.Incomes)
	w.Optional("lowest", s.Lowest)
	w.Optional("highest", s.Highest)
	w.Append("balanceHistory", nonNil(s.BalanceHistory))
	w.Append("dailyNetChange", nonNil(s.DailyNetChange))
	return w.MarshalJSON()
}

// nonNil makes empty series marshal as [] instead of null.
func nonNil(s []Snapshot) []Snapshot {
	if s == nil {
		return []Snapshot{}
	}
	return s
}
