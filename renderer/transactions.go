package renderer

import (
	"strconv"

	"github.com/etnz/cashbook"
)

// NoTransactions is rendered in place of an empty transaction list.
const NoTransactions = "No transactions to display.\n"

// Transactions renders a numbered table of transactions, in the given order.
func Transactions(txs []cashbook.Transaction, currency string) string {
	if len(txs) == 0 {
		return NoTransactions
	}
	r := &markdown{currency: currency}
	r.Printf("## Transactions\n\n")
	r.tableHeader("rlr", "#", "Date", "Amount")
	for i, tx := range txs {
		r.tableRow(strconv.Itoa(i+1), tx.Date.String(), tx.Amount.SignedFormat(r.currency))
	}
	return r.String()
}
