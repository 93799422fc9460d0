// Package grade defines the Profile type and sentinel errors for graded
// porosity construction.
package grade

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for profile construction.
var (
	// ErrEvenCount indicates the sub-layer count is even or below one; a
	// mirror-symmetric profile needs an odd number of sub-layers.
	ErrEvenCount = errors.New("grade: sub-layer count must be odd and at least 1")
	// ErrZeroPorosity indicates a zero target porosity, which the profile
	// normalization cannot divide by.
	ErrZeroPorosity = errors.New("grade: target porosity must not be zero")
	// ErrPorosityRange indicates a target porosity outside (0,1).
	ErrPorosityRange = errors.New("grade: target porosity must lie in (0,1)")
	// ErrNonPositiveThickness indicates a zero or negative layer thickness.
	ErrNonPositiveThickness = errors.New("grade: layer thickness must be positive")
)

// Profile is a graded porous layer resolved into sub-layers.
// Porosities[i] is the void fraction of sub-layer i and Thicknesses[i] its
// physical thickness in nanometers; both slices always have equal length.
// A Profile is immutable by convention: Build returns fresh slices and no
// method writes through them.
type Profile struct {
	Porosities  []float64
	Thicknesses []float64
}

// Len returns the number of sub-layers.
func (p Profile) Len() int { return len(p.Porosities) }

// MeanPorosity returns the average void fraction across all sub-layers.
// Build pins this to the requested target up to rounding.
func (p Profile) MeanPorosity() float64 {
	if len(p.Porosities) == 0 {
		return 0
	}
	return stat.Mean(p.Porosities, nil)
}

// TotalThickness returns the summed thickness of all sub-layers.
func (p Profile) TotalThickness() float64 {
	return floats.Sum(p.Thicknesses)
}
