// Package renderer formats ledger data as markdown.
package renderer

import (
	"fmt"
	"strings"
)

// markdown accumulates a markdown document.
type markdown struct {
	strings.Builder
	currency string // display currency of amounts
}

// Printf formats according to a format specifier and writes to the document.
func (r *markdown) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// tableHeader prints a table header; align holds one of "l" or "r" per column.
func (r *markdown) tableHeader(align string, columns ...string) {
	r.Printf("| %s |\n", strings.Join(columns, " | "))
	seps := make([]string, len(columns))
	for i := range columns {
		seps[i] = ":---"
		if i < len(align) && align[i] == 'r' {
			seps[i] = "---:"
		}
	}
	r.Printf("|%s|\n", strings.Join(seps, "|"))
}

// tableRow prints a table row.
func (r *markdown) tableRow(cells ...string) {
	r.Printf("| %s |\n", strings.Join(cells, " | "))
}
