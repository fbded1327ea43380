package cashbook

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/etnz/cashbook/date"
)

// testToday is the ledger clock used by tests.
var testToday = date.MustParse("2024-06-15")

// newTestLedger returns an empty ledger whose today is testToday and whose logs are discarded.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	log, _ := test.NewNullLogger()
	l := NewLedger(log)
	l.today = func() date.Date { return testToday }
	return l
}

// ledgerOf returns a test ledger holding the given (date, amount) pairs.
func ledgerOf(t *testing.T, pairs ...string) *Ledger {
	t.Helper()
	if len(pairs)%2 != 0 {
		t.Fatalf("ledgerOf() needs (date, amount) pairs, got %d values", len(pairs))
	}
	l := newTestLedger(t)
	for i := 0; i < len(pairs); i += 2 {
		if err := l.Add(pairs[i], pairs[i+1]); err != nil {
			t.Fatalf("Add(%q, %q) error = %v", pairs[i], pairs[i+1], err)
		}
	}
	return l
}

func snap(day string, value int) Snapshot {
	return Snapshot{Day: date.MustParse(day), Value: A(value)}
}
