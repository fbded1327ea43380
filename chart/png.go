package chart

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PNG is a Canvas that saves figures as PNG images in Dir.
type PNG struct {
	Dir    string
	Width  vg.Length // defaults to 10 inches
	Height vg.Length // defaults to 6 inches
}

// newPlot creates a plot with the figure titles and the points labels on the x axis.
func newPlot(f Figure) *plot.Plot {
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Add(plotter.NewGrid())

	labels := make([]string, len(f.Points))
	for i, pt := range f.Points {
		labels[i] = pt.Label
	}
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	return p
}

// Line draws the points joined by a line.
func (c PNG) Line(f Figure) (string, error) {
	p := newPlot(f)
	xys := make(plotter.XYs, len(f.Points))
	for i, pt := range f.Points {
		xys[i].X, xys[i].Y = float64(i), pt.Value
	}
	line, scatter, err := plotter.NewLinePoints(xys)
	if err != nil {
		return "", err
	}
	line.Color = Line
	scatter.Color = Line
	scatter.Shape = draw.CircleGlyph{}
	p.Add(line, scatter)
	return c.save(p, f.Name)
}

// Bars draws one bar per point, in the point color.
func (c PNG) Bars(f Figure) (string, error) {
	p := newPlot(f)
	for i, pt := range f.Points {
		bar, err := plotter.NewBarChart(plotter.Values{pt.Value}, vg.Points(20))
		if err != nil {
			return "", err
		}
		bar.XMin = float64(i)
		bar.LineStyle.Width = 0
		if pt.Color != nil {
			bar.Color = pt.Color
		}
		p.Add(bar)
	}
	return c.save(p, f.Name)
}

func (c PNG) save(p *plot.Plot, name string) (string, error) {
	w, h := c.Width, c.Height
	if w == 0 {
		w = 10 * vg.Inch
	}
	if h == 0 {
		h = 6 * vg.Inch
	}
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return "", fmt.Errorf("cannot create chart folder: %w", err)
	}
	path := filepath.Join(c.Dir, name+".png")
	if err := p.Save(w, h, path); err != nil {
		return "", fmt.Errorf("cannot save %s: %w", path, err)
	}
	return path, nil
}
