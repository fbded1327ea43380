package cashbook

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/etnz/cashbook/date"
)

// Aggregator derives the balance statistics of a Ledger.
//
// It keeps no state but the last computed State: every Recompute discards it
// and rebuilds it from scratch. Nothing is ever updated incrementally.
type Aggregator struct {
	ledger *Ledger
	state  State
	log    logrus.FieldLogger
}

// NewAggregator creates an Aggregator reading from ledger.
func NewAggregator(ledger *Ledger, log logrus.FieldLogger) *Aggregator {
	return &Aggregator{ledger: ledger, log: log}
}

// Sorted returns the ledger transactions in chronological order.
//
// The sort is stable, meaning transactions on the same day keep their
// insertion order.
func (a *Aggregator) Sorted() []Transaction {
	txs := a.ledger.Transactions()
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})
	return txs
}

// Recompute rebuilds the State from the current ledger content and returns it.
func (a *Aggregator) Recompute() State {
	a.Reset()

	var (
		s        State
		balances date.History[Amount] // end of day balance
		changes  date.History[Amount] // net change of the day
	)
	for _, tx := range a.Sorted() {
		s.Balance = s.Balance.Add(tx.Amount)
		if tx.IsExpense() {
			s.Expenses++
		} else {
			s.Incomes++
		}
		// Transactions are sorted: the last write for a day is its end of day balance.
		balances.Set(tx.Date, s.Balance)
		changes.Merge(tx.Date, tx.Amount, Amount.Add)
	}

	s.BalanceHistory = snapshots(&balances)
	s.DailyNetChange = snapshots(&changes)

	for i := range s.BalanceHistory {
		day := &s.BalanceHistory[i]
		// Strict comparisons keep the earliest day on ties.
		if s.Lowest == nil || day.Value.LessThan(s.Lowest.Value) {
			low := *day
			s.Lowest = &low
		}
		if s.Highest == nil || day.Value.GreaterThan(s.Highest.Value) {
			high := *day
			s.Highest = &high
		}
	}

	a.state = s
	a.log.WithFields(logrus.Fields{
		"transactions": s.Count(),
		"days":         len(s.BalanceHistory),
		"balance":      s.Balance,
	}).Debug("Aggregator.Recompute.Complete")
	return s
}

// Summary returns the State computed by the last Recompute.
//
// It does not recompute: after the ledger changes, it is stale until the
// next Recompute.
func (a *Aggregator) Summary() State { return a.state }

// Reset drops the derived state.
func (a *Aggregator) Reset() { a.state = State{} }

func snapshots(h *date.History[Amount]) []Snapshot {
	res := make([]Snapshot, 0, h.Len())
	for on, v := range h.Values() {
		res = append(res, Snapshot{Day: on, Value: v})
	}
	return res
}
