package renderer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/cashbook"
)

// Summary renders the statistics of a ledger state.
//
// Lowest and highest balances are only rendered when the state has some.
func Summary(s cashbook.State, currency string) string {
	r := &markdown{currency: currency}
	r.Printf("## Statistics\n\n")
	r.tableHeader("lrl", "Metric", "Value", "Day")
	r.tableRow("Balance", s.Balance.Format(r.currency), "")
	ConditionalBlock(r, func(w io.Writer) bool {
		low, high, err := s.Extrema()
		if err != nil {
			return false
		}
		fmt.Fprintf(w, "| Lowest balance | %s | %s |\n", low.Value.Format(r.currency), low.Day)
		fmt.Fprintf(w, "| Highest balance | %s | %s |\n", high.Value.Format(r.currency), high.Day)
		return true
	})
	r.tableRow("Expenses", strconv.Itoa(s.Expenses), "")
	r.tableRow("Incomes", strconv.Itoa(s.Incomes), "")
	return r.String()
}
