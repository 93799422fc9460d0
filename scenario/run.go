package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/porogan/braggsim/chart"
	"github.com/porogan/braggsim/dispersion"
	"github.com/porogan/braggsim/export"
	"github.com/porogan/braggsim/spectrum"
	"github.com/porogan/braggsim/stack"
)

// Resolved is one standalone sweep of a scenario: its label and the
// segments to assemble, ambient side first. Composites carry two
// segments, plain structures one.
type Resolved struct {
	Label    string
	Segments []stack.Segment
}

// Structure returns the host structure of the sweep, the one that names
// the exported file. For composites that is the bottom segment.
func (r Resolved) Structure() stack.Structure {
	return r.Segments[len(r.Segments)-1].Structure
}

// Resolve grades every structure of the scenario and returns the
// standalone sweeps in file order. Structures referenced as tops become
// building blocks inside their hosts and get no entry of their own.
// Grading and geometry failures come back wrapped with the offending
// label.
func Resolve(sc *Scenario) ([]Resolved, error) {
	segments := make(map[string]stack.Segment, len(sc.Structures))
	for _, spec := range sc.Structures {
		seg, err := stack.NewSegment(stack.Structure{
			Period:   spec.Period,
			Ratio:    spec.Ratio,
			Porosity: spec.Porosity,
			Repeats:  spec.Repeats,
			Template: spec.Template,
		}, sc.Grading.Count, sc.Grading.Factor, sc.Grading.Exponent)
		if err != nil {
			return nil, fmt.Errorf("scenario: structure %q: %w", spec.Label, err)
		}
		segments[spec.Label] = seg
	}

	tops := make(map[string]bool, len(sc.Structures))
	for _, spec := range sc.Structures {
		if spec.Top != "" {
			tops[spec.Top] = true
		}
	}

	resolved := make([]Resolved, 0, len(sc.Structures))
	for _, spec := range sc.Structures {
		if tops[spec.Label] {
			continue
		}
		segs := make([]stack.Segment, 0, 2)
		if spec.Top != "" {
			segs = append(segs, segments[spec.Top])
		}
		segs = append(segs, segments[spec.Label])
		resolved = append(resolved, Resolved{Label: spec.Label, Segments: segs})
	}
	return resolved, nil
}

// Report summarizes a finished batch.
type Report struct {
	// CSVPaths lists the exported spectra in sweep order.
	CSVPaths []string
	// PlotPath is the rendered chart, empty when plotting was off.
	PlotPath string
	// Results maps structure labels to their sweeps.
	Results map[string]spectrum.Result
}

// Run sweeps every standalone structure of the scenario. Each sweep is
// exported as CSV under sc.Output; when sc.Plot names a file, all curves
// are rendered into one chart there as well.
//
// The scenario must have passed Validate (Load guarantees this).
func Run(ctx context.Context, sc *Scenario) (*Report, error) {
	resolved, err := Resolve(sc)
	if err != nil {
		return nil, err
	}

	opts := spectrum.DefaultOptions()
	opts.Media = stack.Media{
		Ambient:   sc.Media.Ambient,
		Solid:     sc.Media.Solid,
		Void:      sc.Media.Void,
		Substrate: sc.Media.Substrate,
	}
	opts.Workers = sc.Workers

	if sc.Dispersion != "" {
		tbl, err := dispersion.Load(sc.Dispersion)
		if err != nil {
			return nil, err
		}
		opts.Dispersion = tbl
		slog.Info("dispersion table loaded",
			"path", sc.Dispersion, "samples", tbl.Len(),
			"min_nm", tbl.MinNm(), "max_nm", tbl.MaxNm())
	}

	report := &Report{Results: make(map[string]spectrum.Result, len(resolved))}
	curves := make([]chart.Series, 0, len(resolved))
	for _, rv := range resolved {
		res, err := spectrum.Run(ctx, rv.Segments, opts)
		if err != nil {
			return nil, fmt.Errorf("scenario: structure %q: %w", rv.Label, err)
		}
		report.Results[rv.Label] = res

		meta := export.Meta{Label: rv.Label, Structure: rv.Structure()}
		path, err := export.WriteFile(sc.Output, meta, res)
		if err != nil {
			return nil, fmt.Errorf("scenario: structure %q: %w", rv.Label, err)
		}
		report.CSVPaths = append(report.CSVPaths, path)
		curves = append(curves, chart.Reflectance(rv.Label, res))

		peakWl, peakR := res.Peak()
		slog.Info("structure swept", "label", rv.Label, "segments", len(rv.Segments),
			"samples", res.Len(), "peak_nm", peakWl, "peak_r", peakR, "csv", path)
	}

	if sc.Plot != "" {
		plotPath := filepath.Join(sc.Output, sc.Plot)
		if err := chart.Save(plotPath, curves, chart.WithYRange(0, 1)); err != nil {
			return nil, err
		}
		report.PlotPath = plotPath
		slog.Info("chart rendered", "path", plotPath, "curves", len(curves))
	}
	return report, nil
}
