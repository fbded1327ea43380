// Package cmd implements the cb command-line application.
package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/etnz/cashbook/config"
)

// RawStyle prints markdown as is, without terminal styling.
const RawStyle = "raw"

// App holds what the commands share. It is built once by the main package.
type App struct {
	Config *config.Config
	Log    *logrus.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, app *App) {
	c.Register(&shellCmd{app: app}, "ledger")
	c.Register(&reportCmd{app: app}, "ledger")
}

// Errorf prints an error message on the app stderr.
func (a *App) Errorf(format string, args ...any) {
	fmt.Fprintf(a.Stderr, "Error: "+format+"\n", args...)
}

// printMarkdown renders md for the terminal using the configured style.
func printMarkdown(w io.Writer, md, style string) {
	if style == RawStyle {
		fmt.Fprint(w, md)
		return
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		// Unreadable but still useful.
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
