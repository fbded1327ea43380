package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Choice is an action of the interactive menu.
type Choice int

const (
	ChoiceAdd Choice = iota + 1
	ChoiceList
	ChoiceStats
	ChoiceClear
	ChoicePlotBalance
	ChoicePlotDaily
	ChoiceExit
)

var choiceLabels = map[Choice]string{
	ChoiceAdd:         "Add a transaction",
	ChoiceList:        "List transactions",
	ChoiceStats:       "Show statistics",
	ChoiceClear:       "Clear transactions",
	ChoicePlotBalance: "Plot balance history",
	ChoicePlotDaily:   "Plot daily net change",
	ChoiceExit:        "Exit",
}

func (c Choice) String() string {
	if l, ok := choiceLabels[c]; ok {
		return l
	}
	return "Choice(" + strconv.Itoa(int(c)) + ")"
}

// ParseChoice parses the number typed by the user.
func ParseChoice(s string) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || Choice(n) < ChoiceAdd || Choice(n) > ChoiceExit {
		return 0, fmt.Errorf("invalid option %q, want a number from %d to %d", strings.TrimSpace(s), ChoiceAdd, ChoiceExit)
	}
	return Choice(n), nil
}

// printMenu prints the numbered list of choices.
func printMenu(w io.Writer) {
	fmt.Fprintln(w)
	for c := ChoiceAdd; c <= ChoiceExit; c++ {
		fmt.Fprintf(w, "%d. %s\n", c, c)
	}
}
