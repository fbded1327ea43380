package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/chart"
	"github.com/etnz/cashbook/renderer"
)

type reportCmd struct {
	app    *App
	json   bool
	charts bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute statistics on a list of transactions" }
func (*reportCmd) Usage() string {
	return `cb report [-json] [-charts] [<file>]

  Reads transactions from <file>, or stdin, one per line:

    2024-01-01 100
    2024-01-01, -30
    # comments and blank lines are skipped

  Invalid lines are reported and skipped. Then prints the transactions in
  chronological order and their statistics, and with -charts, writes both
  charts into the chart folder.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the statistics as JSON")
	f.BoolVar(&c.charts, "charts", false, "also write the balance history and daily net change charts")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		c.app.Errorf("report takes at most one file")
		return subcommands.ExitUsageError
	}

	in := c.app.Stdin
	if f.NArg() == 1 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			c.app.Errorf("%v", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	log := c.app.Log.WithField("component", "report")
	ledger := cashbook.NewLedger(log)
	agg := cashbook.NewAggregator(ledger, log)

	status := subcommands.ExitSuccess
	if err := ReadTransactions(in, ledger); err != nil {
		if errors.Is(err, errRead) {
			c.app.Errorf("%v", err)
			return subcommands.ExitFailure
		}
		c.app.Errorf("some transactions were skipped:\n%v", err)
		status = subcommands.ExitFailure
	}

	state := agg.Recompute()
	if c.json {
		enc := json.NewEncoder(c.app.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(state); err != nil {
			c.app.Errorf("%v", err)
			return subcommands.ExitFailure
		}
	} else {
		md := renderer.Transactions(agg.Sorted(), c.app.Config.Currency) + "\n" + renderer.Summary(state, c.app.Config.Currency)
		printMarkdown(c.app.Stdout, md, c.app.Config.Style)
	}

	if c.charts {
		p := chart.NewPresenter(agg, chart.PNG{Dir: c.app.Config.ChartDir}, log)
		for _, render := range []func() (string, error){p.RenderBalanceHistory, p.RenderDailyNetChange} {
			location, err := render()
			if err != nil {
				c.app.Errorf("%v", err)
				if !errors.Is(err, cashbook.ErrNoData) {
					status = subcommands.ExitFailure
				}
				continue
			}
			fmt.Fprintf(c.app.Stderr, "Chart written to %s\n", location)
		}
	}
	return status
}

// errRead marks an input that could not be read at all.
var errRead = errors.New("cannot read transactions")

// ReadTransactions adds to ledger the transactions read from r, one
// "DATE AMOUNT" per line, separated by spaces, tabs or a comma.
//
// Invalid lines are skipped, and reported in the returned error along with
// their line number.
func ReadTransactions(r io.Reader, ledger *cashbook.Ledger) error {
	var errs error
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			errs = errors.Join(errs, fmt.Errorf("line %d: want DATE AMOUNT, got %q", n, line))
			continue
		}
		if err := ledger.Add(fields[0], fields[1]); err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: %w", n, err))
		}
	}
	if err := scanner.Err(); err != nil {
		errs = errors.Join(errs, fmt.Errorf("%w: %w", errRead, err))
	}
	return errs
}
