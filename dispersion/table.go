package dispersion

import (
	"fmt"
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/interp"
)

// NmPerMicron converts the micrometer wavelengths of published index
// tables to the nanometer unit used across this module.
const NmPerMicron = 1000.0

// Table is an immutable wavelength→index lookup built from measured
// dispersion data. Lookups interpolate linearly between samples and
// refuse wavelengths outside the sampled domain.
type Table struct {
	wavelengths []float64 // nm, strictly ascending
	indices     []float64
	pl          interp.PiecewiseLinear
}

// FromColumns builds a Table from parallel wavelength (nm) and index
// columns. Both slices are copied; callers keep ownership of their data.
func FromColumns(wavelengthsNm, indices []float64) (*Table, error) {
	if len(wavelengthsNm) != len(indices) {
		return nil, fmt.Errorf("%w: %d wavelengths vs %d indices",
			ErrBadTable, len(wavelengthsNm), len(indices))
	}
	if len(wavelengthsNm) < 2 {
		return nil, ErrTooFewPoints
	}
	for i, w := range wavelengthsNm {
		if math.IsNaN(w) || math.IsInf(w, 0) || math.IsNaN(indices[i]) || math.IsInf(indices[i], 0) {
			return nil, fmt.Errorf("%w: non-finite sample at row %d", ErrBadTable, i)
		}
		if i > 0 && w <= wavelengthsNm[i-1] {
			return nil, fmt.Errorf("%w: row %d", ErrNotAscending, i)
		}
	}

	t := &Table{
		wavelengths: append([]float64(nil), wavelengthsNm...),
		indices:     append([]float64(nil), indices...),
	}
	if err := t.pl.Fit(t.wavelengths, t.indices); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}
	return t, nil
}

// Load reads a two-column CSV dispersion table from path. The file must
// carry a header row; column one is wavelength in micrometers, column two
// the refractive index there. Rows must ascend strictly in wavelength.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dispersion: open table: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, dataframe.WithDelimiter(','), dataframe.HasHeader(true))
	if df.Error() != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, df.Error())
	}
	if df.Ncol() < 2 {
		return nil, fmt.Errorf("%w: need wavelength and index columns", ErrBadTable)
	}

	// Unparseable cells surface as NaN here and fail in FromColumns.
	names := df.Names()
	microns := df.Col(names[0]).Float()
	indices := df.Col(names[1]).Float()

	wavelengths := make([]float64, len(microns))
	for i, um := range microns {
		wavelengths[i] = um * NmPerMicron
	}
	return FromColumns(wavelengths, indices)
}

// Index returns the refractive index at wavelengthNm, interpolating
// linearly between the two nearest samples. Wavelengths outside
// [MinNm, MaxNm] fail with ErrOutOfRange.
func (t *Table) Index(wavelengthNm float64) (float64, error) {
	if math.IsNaN(wavelengthNm) || wavelengthNm < t.MinNm() || wavelengthNm > t.MaxNm() {
		return 0, fmt.Errorf("%w: %g nm outside [%g, %g]",
			ErrOutOfRange, wavelengthNm, t.MinNm(), t.MaxNm())
	}
	return t.pl.Predict(wavelengthNm), nil
}

// MinNm returns the shortest sampled wavelength in nanometers.
func (t *Table) MinNm() float64 { return t.wavelengths[0] }

// MaxNm returns the longest sampled wavelength in nanometers.
func (t *Table) MaxNm() float64 { return t.wavelengths[len(t.wavelengths)-1] }

// Len returns the number of samples.
func (t *Table) Len() int { return len(t.wavelengths) }

// Wavelengths returns a copy of the sampled wavelengths in nanometers.
func (t *Table) Wavelengths() []float64 {
	return append([]float64(nil), t.wavelengths...)
}

// Indices returns a copy of the sampled refractive indices.
func (t *Table) Indices() []float64 {
	return append([]float64(nil), t.indices...)
}
