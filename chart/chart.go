package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/porogan/braggsim/spectrum"
)

// Sentinel errors for chart rendering.
var (
	// ErrNoSeries indicates a save call without any curves.
	ErrNoSeries = errors.New("chart: at least one series is required")
	// ErrLengthMismatch indicates a series whose X and Y differ in length.
	ErrLengthMismatch = errors.New("chart: series X and Y lengths differ")
)

// Series is one labeled curve. X and Y are views, not copies; callers
// that keep mutating their data should pass copies.
type Series struct {
	Label string
	X, Y  []float64
}

// Reflectance wraps a sweep result as a plottable series.
func Reflectance(label string, res spectrum.Result) Series {
	return Series{Label: label, X: res.Wavelengths, Y: res.Reflectance}
}

// Difference returns the pointwise a-b curve on a's grid. Both series
// must be sampled on grids of the same length.
func Difference(label string, a, b Series) (Series, error) {
	if len(a.X) != len(a.Y) || len(b.X) != len(b.Y) || len(a.Y) != len(b.Y) {
		return Series{}, ErrLengthMismatch
	}
	y := make([]float64, len(a.Y))
	floats.SubTo(y, a.Y, b.Y)
	return Series{Label: label, X: append([]float64(nil), a.X...), Y: y}, nil
}

// options collects rendering adjustments.
type options struct {
	title                string
	xLabel, yLabel       string
	xmin, xmax           float64
	ymin, ymax           float64
	hasXRange, hasYRange bool
	width, height        vg.Length
}

// Option adjusts chart rendering.
type Option func(*options)

func defaultOptions() options {
	return options{
		title:  "Reflectance spectrum",
		xLabel: "Wavelength (nm)",
		yLabel: "Reflectance",
		width:  6 * vg.Inch,
		height: 4 * vg.Inch,
	}
}

// WithTitle overrides the chart title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithXRange clamps the wavelength axis.
func WithXRange(min, max float64) Option {
	return func(o *options) { o.xmin, o.xmax, o.hasXRange = min, max, true }
}

// WithYRange clamps the reflectance axis.
func WithYRange(min, max float64) Option {
	return func(o *options) { o.ymin, o.ymax, o.hasYRange = min, max, true }
}

// WithSize sets the rendered image size.
func WithSize(width, height vg.Length) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// Save renders all series into one chart at path.
func Save(path string, series []Series, opts ...Option) error {
	if len(series) == 0 {
		return ErrNoSeries
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = o.xLabel
	p.Y.Label.Text = o.yLabel
	p.Add(plotter.NewGrid())

	for i, s := range series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("%w: series %q", ErrLengthMismatch, s.Label)
		}
		xy := make(plotter.XYs, len(s.X))
		for j := range s.X {
			xy[j].X = s.X[j]
			xy[j].Y = s.Y[j]
		}
		line, err := plotter.NewLine(xy)
		if err != nil {
			return fmt.Errorf("chart: line %q: %w", s.Label, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		if s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
	}

	if o.hasXRange {
		p.X.Min, p.X.Max = o.xmin, o.xmax
	}
	if o.hasYRange {
		p.Y.Min, p.Y.Max = o.ymin, o.ymax
	}

	if err := p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("chart: save: %w", err)
	}
	return nil
}
