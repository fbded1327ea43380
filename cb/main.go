package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/cashbook/cmd"
	"github.com/etnz/cashbook/config"
	"github.com/etnz/cashbook/logging"
)

func main() {
	name := path.Base(os.Args[0])

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	cfg.SetFlags(flag.CommandLine)

	// Shell completion: exits when invoked by the shell (COMP_LINE) or to
	// install it (COMP_INSTALL=1).
	global := map[string]complete.Predictor{
		"currency":  predict.Set{"PLN", "EUR", "USD", "GBP", "CHF"},
		"chart-dir": predict.Dirs("*"),
		"log-level": predict.Set{"panic", "fatal", "error", "warning", "info", "debug", "trace"},
		"style":     predict.Set{"auto", "dark", "light", "notty", "dracula", cmd.RawStyle},
	}
	completion := &complete.Command{
		Flags: global,
		Sub: map[string]*complete.Command{
			"shell": {},
			"report": {
				Flags: map[string]complete.Predictor{
					"json":   predict.Nothing,
					"charts": predict.Nothing,
				},
				Args: predict.Files("*"),
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
	completion.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	log, err := logging.Setup(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	log.WithField("config", *cfg).Debug("Main.Config.Loaded")

	cmd.Register(commander, &cmd.App{
		Config: cfg,
		Log:    log,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	os.Exit(int(commander.Execute(context.Background())))
}
