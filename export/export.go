package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/porogan/braggsim/spectrum"
	"github.com/porogan/braggsim/stack"
)

// Sentinel errors for spectrum export.
var (
	// ErrEmptyResult indicates a result without samples.
	ErrEmptyResult = errors.New("export: result carries no samples")
	// ErrLengthMismatch indicates wavelength and reflectance lists of
	// different lengths.
	ErrLengthMismatch = errors.New("export: wavelength and reflectance lengths differ")
)

// Meta labels an exported spectrum with the structure that produced it.
type Meta struct {
	Label     string
	Structure stack.Structure
}

// FileName derives the conventional archive name for m. All numeric
// fields truncate toward zero.
func FileName(m Meta) string {
	s := m.Structure
	return fmt.Sprintf("TMM_%s_%dPr_%dnm_%d-%d_%dPc.csv",
		m.Label, s.Repeats, int(s.Period),
		int(s.PorousThickness()), int(s.SolidThickness()), int(s.Porosity*100))
}

// Write streams the labeled spectrum onto w: the structure preamble first,
// then one Wavelength,Reflectance row per sample.
func Write(w io.Writer, m Meta, res spectrum.Result) error {
	if len(res.Wavelengths) != len(res.Reflectance) {
		return ErrLengthMismatch
	}
	if res.Len() == 0 {
		return ErrEmptyResult
	}

	s := m.Structure
	_, err := fmt.Fprintf(w,
		"TMM Simulation result\n"+
			",%s %d %% %.2f nm %.3f Ratio\n"+
			"%d pair DBR\n"+
			"%.2f nm porous layer\n"+
			"%.2f nm non-porous layer\n"+
			"%d %% Porosity\n"+
			"\n"+
			"Wavelength,Reflectance\n"+
			"nm,\n",
		m.Label, int(s.Porosity*100), s.Period, s.Ratio,
		s.Repeats, s.PorousThickness(), s.SolidThickness(), int(s.Porosity*100))
	if err != nil {
		return fmt.Errorf("export: preamble: %w", err)
	}

	// Columns are rendered up front: float series would print at a fixed
	// six decimals, and archives keep shortest round-trip numbers.
	df := dataframe.New(
		series.New(decimals(res.Wavelengths), series.String, "Wavelength"),
		series.New(decimals(res.Reflectance), series.String, "Reflectance"),
	)
	if df.Error() != nil {
		return fmt.Errorf("export: frame: %w", df.Error())
	}
	if err := df.WriteCSV(w, dataframe.WriteHeader(false)); err != nil {
		return fmt.Errorf("export: rows: %w", err)
	}
	return nil
}

// decimals renders values as their shortest exact decimal form.
func decimals(values []float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}

// WriteFile writes the spectrum into dir under the conventional name and
// returns the full path. Missing directories are created.
func WriteFile(dir string, m Meta, res spectrum.Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: mkdir: %w", err)
	}
	path := filepath.Join(dir, FileName(m))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create: %w", err)
	}
	if err := Write(f, m, res); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: close: %w", err)
	}
	return path, nil
}
