// Package plot charts an iteration function and its first two derivatives along the real axis.
package plot

import (
	"fmt"
	"io"
	"math"

	"NewtonFractal/misc"
	"NewtonFractal/newton"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Settings struct {
	Height  int
	Max     float64
	Min     float64
	Samples int
	Width   int
}

func (s *Settings) Verify() {
	if s.Min == 0 && s.Max == 0 {
		s.Min, s.Max = -2, 2
	}
	if s.Max < s.Min {
		s.Min, s.Max = s.Max, s.Min
	}
	if s.Samples < 2 {
		s.Samples = 100
	}
	if s.Width <= 0 {
		s.Width = 800
	}
	if s.Height <= 0 {
		s.Height = 600
	}
}

// Curve is the real part of one function sampled on the real axis. Samples where the value
// is not finite are left out.
type Curve struct {
	Name    string
	XValues []float64
	YValues []float64
}

// Curves samples f, f' and f'' in that order.
func Curves(f newton.Function, diff newton.Differentiator, settings Settings) []Curve {
	curves := []Curve{{Name: "f"}, {Name: "f'"}, {Name: "f''"}}
	for i := 0; i < settings.Samples; i++ {
		x := misc.LerpFloat64(settings.Min, settings.Max, float64(i)/float64(settings.Samples-1))
		z := complex(x, 0)
		values := []complex128{f.Evaluate(z), diff.Of(f, z, 1), diff.Of(f, z, 2)}
		for j, v := range values {
			y := real(v)
			if math.IsNaN(y) || math.IsInf(y, 0) {
				continue
			}
			curves[j].XValues = append(curves[j].XValues, x)
			curves[j].YValues = append(curves[j].YValues, y)
		}
	}
	return curves
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
	}
}

// Render writes a PNG chart of f, f' and f'' in blue, red and green.
func Render(w io.Writer, f newton.Function, diff newton.Differentiator, settings Settings) error {
	settings.Verify()
	colors := []drawing.Color{chart.ColorBlue, chart.ColorRed, chart.ColorGreen}

	var series []chart.Series
	for i, curve := range Curves(f, diff, settings) {
		// go-chart cannot draw a series with fewer than two points
		if len(curve.XValues) < 2 {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    curve.Name,
			XValues: curve.XValues,
			YValues: curve.YValues,
			Style:   lineStyle(colors[i]),
		})
	}
	if len(series) == 0 {
		return fmt.Errorf("%s has no finite values on [%g, %g]", f.Name, settings.Min, settings.Max)
	}

	graph := chart.Chart{
		Title:      f.Name,
		Width:      settings.Width,
		Height:     settings.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 12}},
		XAxis:      chart.XAxis{Name: "x"},
		Series:     series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("unable to render plot of %s: %w", f.Name, err)
	}
	return nil
}
