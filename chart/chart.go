// Package chart turns the ledger series into charts.
//
// A Presenter prepares the series and a Canvas draws them. PNG is the Canvas
// used by the cb commands.
package chart

import (
	"fmt"
	"image/color"

	"github.com/sirupsen/logrus"

	"github.com/etnz/cashbook"
)

// Chart colors.
var (
	Line = color.RGBA{R: 0x15, G: 0x65, B: 0xc0, A: 0xff} // blue, balance history
	Gain = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff} // green, for non negative days
	Loss = color.RGBA{R: 0xc6, G: 0x28, B: 0x28, A: 0xff} // red, for negative days
)

// Point is one labelled value of a series.
type Point struct {
	Label string
	Value float64
	Color color.Color // only used by bar charts
}

// Figure describes a chart to draw.
type Figure struct {
	Name   string // short identifier, used to name the output
	Title  string
	XLabel string
	YLabel string
	Points []Point
}

// Canvas draws figures and returns where the result can be found.
type Canvas interface {
	Line(f Figure) (string, error)
	Bars(f Figure) (string, error)
}

// Source provides the last computed ledger state.
type Source interface {
	Summary() cashbook.State
}

// Presenter renders the charts of the state provided by its source.
//
// It reads the state as last computed: callers recompute it first.
type Presenter struct {
	source Source
	canvas Canvas
	log    logrus.FieldLogger
}

// NewPresenter creates a Presenter drawing on canvas.
func NewPresenter(source Source, canvas Canvas, log logrus.FieldLogger) *Presenter {
	return &Presenter{source: source, canvas: canvas, log: log}
}

// RenderBalanceHistory draws the end of day balance as a line with points.
// It returns cashbook.ErrNoData, and draws nothing, if there is no history.
func (p *Presenter) RenderBalanceHistory() (string, error) {
	history := p.source.Summary().BalanceHistory
	if len(history) == 0 {
		return "", fmt.Errorf("%w: balance history is empty", cashbook.ErrNoData)
	}
	f := Figure{
		Name:   "balance_history",
		Title:  "Balance history",
		XLabel: "Date",
		YLabel: "Balance",
		Points: points(history),
	}
	return p.draw(f, p.canvas.Line)
}

// RenderDailyNetChange draws one bar per day, green when the day's net change
// is non negative, red otherwise.
// It returns cashbook.ErrNoData, and draws nothing, if there is no data.
func (p *Presenter) RenderDailyNetChange() (string, error) {
	changes := p.source.Summary().DailyNetChange
	if len(changes) == 0 {
		return "", fmt.Errorf("%w: daily net change is empty", cashbook.ErrNoData)
	}
	f := Figure{
		Name:   "daily_net_change",
		Title:  "Daily net change",
		XLabel: "Date",
		YLabel: "Amount",
		Points: points(changes),
	}
	for i, c := range changes {
		f.Points[i].Color = Gain
		if c.Value.IsNegative() {
			f.Points[i].Color = Loss
		}
	}
	return p.draw(f, p.canvas.Bars)
}

func (p *Presenter) draw(f Figure, with func(Figure) (string, error)) (string, error) {
	location, err := with(f)
	if err != nil {
		p.log.WithError(err).WithField("chart", f.Name).Error("Presenter.Render.Error")
		return "", fmt.Errorf("cannot draw %s: %w", f.Title, err)
	}
	p.log.WithFields(logrus.Fields{"chart": f.Name, "points": len(f.Points), "location": location}).Info("Presenter.Render.Complete")
	return location, nil
}

func points(series []cashbook.Snapshot) []Point {
	res := make([]Point, len(series))
	for i, s := range series {
		res[i] = Point{Label: s.Label(), Value: s.Value.Float()}
	}
	return res
}
