// Package spectrum defines sweep options, results and the Solver seam.
package spectrum

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/porogan/braggsim/dispersion"
	"github.com/porogan/braggsim/stack"
	"github.com/porogan/braggsim/tmm"
)

// ErrEmptyGrid indicates a dispersion table whose usable range, after
// clipping at MaxWavelengthNm, contains no wavelengths.
var ErrEmptyGrid = errors.New("spectrum: no usable wavelengths in the sweep range")

// Default refractive indices of the reference material system: a GaN
// skeleton on a sapphire substrate, probed from air with air-filled pores.
const (
	DefaultAmbientIndex   = 1.0
	DefaultSolidIndex     = 2.38
	DefaultVoidIndex      = 1.0
	DefaultSubstrateIndex = 1.76
)

// Solver evaluates one stack at one wavelength and returns its
// reflectance. Implementations must treat n and d as read-only: Run calls
// a Solver from many goroutines at once against shared slices.
type Solver func(pol tmm.Polarization, n []complex128, d []float64, angle, wavelengthNm float64) (float64, error)

// Reflectance adapts tmm.Coherent to the Solver shape. It is the solver
// Run falls back to when Options.Solver is nil.
func Reflectance(pol tmm.Polarization, n []complex128, d []float64, angle, wavelengthNm float64) (float64, error) {
	res, err := tmm.Coherent(pol, n, d, angle, wavelengthNm)
	if err != nil {
		return 0, err
	}
	return res.R, nil
}

// Options tunes a sweep. The zero value runs but describes vacuum
// everywhere; start from DefaultOptions and override what differs.
type Options struct {
	// Media carries the four refractive indices around and inside the
	// stack. With a dispersion table present Media.Solid only seeds the
	// pre-flight assembly; the table overrides it at every wavelength.
	Media stack.Media
	// Dispersion switches the sweep to measured solid indices. Nil keeps
	// the constant-index mode.
	Dispersion *dispersion.Table
	// Solver evaluates a single wavelength; nil selects Reflectance.
	Solver Solver
	// Polarization picks s or p; at normal incidence they coincide.
	Polarization tmm.Polarization
	// Angle is the incidence angle in radians, measured in the ambient.
	Angle float64
	// Workers caps concurrent wavelength evaluations; values below 1
	// select GOMAXPROCS.
	Workers int
}

// DefaultOptions returns the sweep configuration of the reference setup:
// GaN on sapphire probed from air, s-polarized normal incidence, constant
// solid index, one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Media: stack.Media{
			Ambient:   DefaultAmbientIndex,
			Solid:     DefaultSolidIndex,
			Void:      DefaultVoidIndex,
			Substrate: DefaultSubstrateIndex,
		},
		Polarization: tmm.S,
	}
}

// Snapshot records the dispersion-dependent state one wavelength used:
// the solid index looked up from the table and the porous sub-layer
// indices derived from it, one slice per segment.
type Snapshot struct {
	WavelengthNm float64
	SolidIndex   float64
	Graded       [][]float64
}

// Result is a completed sweep. Wavelengths and Reflectance run in
// parallel; Snapshots is nil for constant-index sweeps and otherwise
// carries one entry per wavelength.
type Result struct {
	Wavelengths []float64
	Reflectance []float64
	Snapshots   []Snapshot
}

// Len returns the number of sampled wavelengths.
func (r Result) Len() int { return len(r.Wavelengths) }

// Peak returns the wavelength and value of the highest reflectance
// sample, or zeros for an empty result.
func (r Result) Peak() (wavelengthNm, reflectance float64) {
	if len(r.Reflectance) == 0 {
		return 0, 0
	}
	i := floats.MaxIdx(r.Reflectance)
	return r.Wavelengths[i], r.Reflectance[i]
}
