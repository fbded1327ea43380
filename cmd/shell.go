package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/chart"
	"github.com/etnz/cashbook/renderer"
)

type shellCmd struct {
	app *App
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "record transactions and review them interactively" }
func (*shellCmd) Usage() string {
	return `cb shell

  Starts an interactive menu to add, list and clear transactions, show
  statistics and plot charts. Transactions are lost on exit.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sh := NewShell(c.app, chart.PNG{Dir: c.app.Config.ChartDir})
	if err := sh.Run(ctx); err != nil {
		c.app.Errorf("%v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Shell is the interactive menu loop.
//
// It owns no derived state, only the ledger, its aggregator and the chart
// presenter, all created once per shell.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	currency string
	style    string
	log      logrus.FieldLogger

	ledger *cashbook.Ledger
	agg    *cashbook.Aggregator
	charts *chart.Presenter
}

// NewShell creates a shell reading from the app stdin and writing to its stdout.
func NewShell(app *App, canvas chart.Canvas) *Shell {
	log := app.Log.WithField("component", "shell")
	ledger := cashbook.NewLedger(log)
	agg := cashbook.NewAggregator(ledger, log)
	return &Shell{
		in:       bufio.NewScanner(app.Stdin),
		out:      app.Stdout,
		currency: app.Config.Currency,
		style:    app.Config.Style,
		log:      log,
		ledger:   ledger,
		agg:      agg,
		charts:   chart.NewPresenter(agg, canvas, log),
	}
}

// Run shows the menu and dispatches the user choices until Exit is chosen,
// the input ends or ctx is done.
//
// Invalid input is reported and the menu shown again: only I/O failures end the loop with an error.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		printMenu(s.out)
		line, err := s.prompt("Choose an option: ")
		if err != nil {
			return ignoreEOF(err)
		}
		choice, err := ParseChoice(line)
		if err != nil {
			s.printf("Error: %v\n", err)
			continue
		}
		s.log.WithField("choice", choice).Debug("Shell.Run.Dispatch")
		if choice == ChoiceExit {
			return nil
		}
		if err := s.dispatch(choice); err != nil {
			return ignoreEOF(err)
		}
	}
}

func (s *Shell) dispatch(choice Choice) error {
	switch choice {
	case ChoiceAdd:
		return s.add()
	case ChoiceList:
		printMarkdown(s.out, renderer.Transactions(s.agg.Sorted(), s.currency), s.style)
	case ChoiceStats:
		printMarkdown(s.out, renderer.Summary(s.agg.Recompute(), s.currency), s.style)
	case ChoiceClear:
		n := s.ledger.Clear()
		s.agg.Reset()
		s.printf("Transaction list cleared (%d removed).\n", n)
	case ChoicePlotBalance:
		s.agg.Recompute()
		s.plot(s.charts.RenderBalanceHistory())
	case ChoicePlotDaily:
		s.agg.Recompute()
		s.plot(s.charts.RenderDailyNetChange())
	}
	return nil
}

// add asks for a transaction. The date is checked before the amount is asked for.
func (s *Shell) add() error {
	day, err := s.prompt("Transaction date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	if _, err := s.ledger.CheckDate(day); err != nil {
		s.printf("Error: %v\n", err)
		return nil
	}
	amount, err := s.prompt("Amount (negative for an expense, positive for an income): ")
	if err != nil {
		return err
	}
	if err := s.ledger.Add(day, amount); err != nil {
		s.printf("Error: %v\n", err)
		return nil
	}
	s.printf("Transaction added.\n")
	return nil
}

func (s *Shell) plot(location string, err error) {
	switch {
	case errors.Is(err, cashbook.ErrNoData):
		s.printf("Error: no data to display.\n")
	case err != nil:
		s.printf("Error: %v\n", err)
	default:
		s.printf("Chart written to %s\n", location)
	}
}

// prompt prints a question and reads the answer line.
func (s *Shell) prompt(question string) (string, error) {
	s.printf("%s", question)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
