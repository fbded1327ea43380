package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/cashbook/date"
)

// runShell runs a shell on the given input lines and returns its output.
func runShell(t *testing.T, input string) (string, *recorder) {
	t.Helper()
	app, stdout, _ := newTestApp(t, input)
	rec := &recorder{}
	if err := NewShell(app, rec).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return stdout.String(), rec
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output does not contain %q:\n%s", w, out)
		}
	}
}

func TestShell_Statistics(t *testing.T) {
	out, _ := runShell(t, lines(
		"1", "2024-01-01", "100",
		"1", "2024-01-01", "-30",
		"1", "2024-01-02", "-20",
		"3",
		"7",
	))
	if n := strings.Count(out, "Transaction added."); n != 3 {
		t.Errorf("%d transactions added want 3:\n%s", n, out)
	}
	assertContains(t, out,
		"| Balance | $50.00 |  |",
		"| Lowest balance | $50.00 | 2024-01-02 |",
		"| Highest balance | $70.00 | 2024-01-01 |",
		"| Expenses | 2 |  |",
		"| Incomes | 1 |  |",
	)
}

func TestShell_ListIsChronological(t *testing.T) {
	out, _ := runShell(t, lines(
		"1", "2024-01-02", "-20",
		"1", "2024-01-01", "100",
		"2",
		"7",
	))
	first := strings.Index(out, "| 1 | 2024-01-01 | +$100.00 |")
	second := strings.Index(out, "| 2 | 2024-01-02 | -$20.00 |")
	if first < 0 || second < 0 || first > second {
		t.Errorf("transactions are not listed chronologically:\n%s", out)
	}
}

func TestShell_RejectedDateSkipsAmount(t *testing.T) {
	tomorrow := date.Today().Add(1).String()
	// After the rejected date, "2" is read as the next menu choice, not as an amount.
	out, _ := runShell(t, lines("1", tomorrow, "2", "7"))
	assertContains(t, out, "Error: invalid date", "No transactions to display.")
	if strings.Contains(out, "Amount (") {
		t.Errorf("amount was asked for after an invalid date:\n%s", out)
	}
}

func TestShell_RejectedAmount(t *testing.T) {
	out, _ := runShell(t, lines("1", "2024-01-01", "0", "1", "2024-01-01", "abc", "2", "7"))
	if n := strings.Count(out, "Error: invalid amount"); n != 2 {
		t.Errorf("%d invalid amount errors want 2:\n%s", n, out)
	}
	assertContains(t, out, "No transactions to display.")
}

func TestShell_InvalidChoice(t *testing.T) {
	out, _ := runShell(t, lines("9", "abc", "7"))
	if n := strings.Count(out, "Error: invalid option"); n != 2 {
		t.Errorf("%d invalid option errors want 2:\n%s", n, out)
	}
	// The menu is shown again after each error.
	if n := strings.Count(out, "7. Exit"); n != 3 {
		t.Errorf("menu shown %d times want 3", n)
	}
}

func TestShell_PlotWithoutData(t *testing.T) {
	out, rec := runShell(t, lines("5", "6", "7"))
	if n := strings.Count(out, "Error: no data to display."); n != 2 {
		t.Errorf("%d no data errors want 2:\n%s", n, out)
	}
	if len(rec.drawn) != 0 {
		t.Errorf("drew %v on an empty ledger want nothing", rec.drawn)
	}
}

func TestShell_Plot(t *testing.T) {
	out, rec := runShell(t, lines("1", "2024-01-01", "10", "5", "6", "7"))
	assertContains(t, out,
		"Chart written to mem://balance_history",
		"Chart written to mem://daily_net_change",
	)
	if len(rec.drawn) != 2 {
		t.Errorf("drew %v want both charts", rec.drawn)
	}
}

func TestShell_Clear(t *testing.T) {
	out, rec := runShell(t, lines(
		"1", "2024-01-01", "10",
		"3",
		"4",
		"3",
		"5",
		"7",
	))
	assertContains(t, out, "Transaction list cleared (1 removed).", "| Balance | $0.00 |  |")
	if n := strings.Count(out, "Lowest balance"); n != 1 {
		t.Errorf("lowest balance shown %d times want only before clearing:\n%s", n, out)
	}
	if len(rec.drawn) != 0 {
		t.Errorf("drew %v after clearing want nothing", rec.drawn)
	}
}

func TestShell_EndOfInput(t *testing.T) {
	// No exit choice: the shell stops at the end of the input, even in the middle of a prompt.
	runShell(t, lines("1", "2024-01-01"))
	runShell(t, "")
}

func TestShell_Canceled(t *testing.T) {
	app, _, _ := newTestApp(t, lines("2", "7"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewShell(app, &recorder{}).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run(canceled) error = %v want %v", err, context.Canceled)
	}
}
