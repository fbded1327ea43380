package cashbook

import (
	"fmt"

	"github.com/etnz/cashbook/date"
)

// Transaction is a dated, signed amount recorded in the ledger.
type Transaction struct {
	Date   date.Date `json:"date"`
	Amount Amount    `json:"amount"`
}

// NewTransaction creates a Transaction. It is not validated, see Validate.
func NewTransaction(on date.Date, amount Amount) Transaction {
	return Transaction{Date: on, Amount: amount}
}

// IsExpense reports whether the transaction takes money out.
func (t Transaction) IsExpense() bool { return t.Amount.IsNegative() }

// Validate checks that the transaction is not after 'today' and that its amount is not zero.
func (t Transaction) Validate(today date.Date) error {
	if err := checkDay(t.Date, today); err != nil {
		return err
	}
	if t.Amount.IsZero() {
		return fmt.Errorf("%w: amount must not be zero", ErrInvalidAmount)
	}
	return nil
}

// ParseDay parses a YYYY-MM-DD string and checks that it is not after 'today'.
func ParseDay(str string, today date.Date) (date.Date, error) {
	on, err := date.Parse(str)
	if err != nil {
		return date.Date{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return on, checkDay(on, today)
}

func checkDay(on, today date.Date) error {
	if on.IsZero() {
		return fmt.Errorf("%w: date is missing", ErrInvalidDate)
	}
	if on.After(today) {
		return fmt.Errorf("%w: %v is in the future", ErrInvalidDate, on)
	}
	return nil
}

// ParseTransaction parses and validates a transaction from its date and amount strings.
// The date is checked first, so a bad date is reported even if the amount is bad too.
func ParseTransaction(day, amount string, today date.Date) (Transaction, error) {
	on, err := ParseDay(day, today)
	if err != nil {
		return Transaction{}, err
	}
	a, err := ParseAmount(amount)
	if err != nil {
		return Transaction{}, err
	}
	tx := NewTransaction(on, a)
	return tx, tx.Validate(today)
}
