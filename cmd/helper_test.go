package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/etnz/cashbook/chart"
	"github.com/etnz/cashbook/config"
)

// newTestApp returns an app reading stdin from input, printing raw markdown
// and amounts in USD, with its outputs captured.
func newTestApp(t *testing.T, input string) (app *App, stdout, stderr *bytes.Buffer) {
	t.Helper()
	log, _ := test.NewNullLogger()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	app = &App{
		Config: &config.Config{Currency: "USD", ChartDir: t.TempDir(), LogLevel: "info", Style: RawStyle},
		Log:    log,
		Stdin:  strings.NewReader(input),
		Stdout: stdout,
		Stderr: stderr,
	}
	return app, stdout, stderr
}

// recorder is a chart.Canvas that only records the figures names.
type recorder struct {
	drawn []string
}

func (r *recorder) Line(f chart.Figure) (string, error) {
	r.drawn = append(r.drawn, f.Name)
	return "mem://" + f.Name, nil
}

func (r *recorder) Bars(f chart.Figure) (string, error) {
	r.drawn = append(r.drawn, f.Name)
	return "mem://" + f.Name, nil
}

// lines joins its arguments as input lines.
func lines(l ...string) string { return strings.Join(l, "\n") + "\n" }
