package cashbook

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is an exact signed monetary value.
//
// Negative amounts are expenses, positive ones are incomes. The currency is
// not part of the value: a ledger holds a single currency, only used for
// display.
type Amount struct {
	value decimal.Decimal
}

// A returns an Amount from an integer, float or decimal value.
func A[T float64 | int | int64 | decimal.Decimal](value T) Amount {
	switch v := any(value).(type) {
	case float64:
		return Amount{decimal.NewFromFloat(v)}
	case int:
		return Amount{decimal.NewFromInt(int64(v))}
	case int64:
		return Amount{decimal.NewFromInt(v)}
	case decimal.Decimal:
		return Amount{v}
	}
	panic("unreachable")
}

// ParseAmount parses a decimal string like "-12.50".
func ParseAmount(str string) (Amount, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, str)
	}
	return Amount{v}, nil
}

func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) IsPositive() bool          { return a.value.IsPositive() }
func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) Add(b Amount) Amount       { return Amount{a.value.Add(b.value)} }

// Float returns the closest float64, for plotting only.
func (a Amount) Float() float64 { return a.value.InexactFloat64() }

// String returns the exact decimal representation, e.g. "-12.5".
func (a Amount) String() string { return a.value.String() }

// Format returns the amount formatted in the given currency, rounded to the
// currency's minor unit, e.g. "-$1,234.50" for USD. Amounts beyond int64
// minor units are printed plainly, e.g. "100000000000000000000.00 USD".
func (a Amount) Format(currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return a.value.StringFixed(2) + " " + currency
	}
	shifted := a.value.Shift(int32(cur.Fraction)).Round(0)
	minor := shifted.IntPart()
	if !shifted.Equal(decimal.NewFromInt(minor)) {
		// Too many minor units for the formatter.
		return a.value.StringFixed(int32(cur.Fraction)) + " " + cur.Code
	}
	return cur.Formatter().Format(minor)
}

// SignedFormat is like Format but always shows the sign of non-zero amounts.
func (a Amount) SignedFormat(currency string) string {
	if a.IsPositive() {
		return "+" + a.Format(currency)
	}
	return a.Format(currency)
}

// MarshalJSON writes the amount as a json string, to keep it exact.
func (a Amount) MarshalJSON() ([]byte, error) { return a.value.MarshalJSON() }

// MustAmount is like ParseAmount but panics on error.
func MustAmount(str string) Amount {
	a, err := ParseAmount(str)
	if err != nil {
		panic(err.Error())
	}
	return a
}
