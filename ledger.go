package cashbook

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/etnz/cashbook/date"
)

// Ledger holds the validated transactions, in insertion order.
//
// It lives for the duration of the process: nothing is persisted.
type Ledger struct {
	transactions []Transaction
	today        func() date.Date // ledger clock, used to reject future dates
	log          logrus.FieldLogger
}

// NewLedger creates an empty ledger.
func NewLedger(log logrus.FieldLogger) *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		today:        date.Today,
		log:          log,
	}
}

// Add parses, validates and appends a transaction.
//
// It fails with ErrInvalidDate if day is not a YYYY-MM-DD date or is after
// today, and with ErrInvalidAmount if amount is not a number or is zero. A
// rejected transaction leaves the ledger unchanged.
func (l *Ledger) Add(day, amount string) error {
	tx, err := ParseTransaction(day, amount, l.today())
	if err != nil {
		l.log.WithError(err).WithFields(logrus.Fields{"date": day, "amount": amount}).Debug("Ledger.Add.Rejected")
		return err
	}
	l.append(tx)
	return nil
}

// Append validates and appends an already parsed transaction.
func (l *Ledger) Append(tx Transaction) error {
	if err := tx.Validate(l.today()); err != nil {
		l.log.WithError(err).WithField("date", tx.Date).Debug("Ledger.Append.Rejected")
		return err
	}
	l.append(tx)
	return nil
}

func (l *Ledger) append(tx Transaction) {
	l.transactions = append(l.transactions, tx)
	l.log.WithFields(logrus.Fields{
		"date":   tx.Date,
		"amount": tx.Amount,
		"count":  len(l.transactions),
	}).Debug("Ledger.Append.Complete")
}

// CheckDate validates a date on its own, so that it can be rejected before
// the amount is even asked for.
func (l *Ledger) CheckDate(day string) (date.Date, error) {
	return ParseDay(day, l.today())
}

// Transactions returns a copy of the transactions in insertion order.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Clear removes all transactions and returns how many were removed.
func (l *Ledger) Clear() int {
	n := len(l.transactions)
	l.transactions = l.transactions[:0]
	l.log.WithField("count", n).Info("Ledger.Clear.Complete")
	return n
}
