// Package tmm defines polarization modes, the Result type and sentinel
// errors for transfer-matrix evaluation.
package tmm

import "errors"

// Sentinel errors for stack validation.
var (
	// ErrLayerMismatch indicates the index and thickness lists differ in length.
	ErrLayerMismatch = errors.New("tmm: index and thickness lists must have equal length")
	// ErrTooFewLayers indicates fewer than two layers; at minimum the two
	// semi-infinite boundary media are required.
	ErrTooFewLayers = errors.New("tmm: a stack needs at least the two boundary media")
	// ErrFiniteBoundary indicates the first or last layer carries a finite
	// thickness; boundary media must be semi-infinite (+Inf).
	ErrFiniteBoundary = errors.New("tmm: boundary media must have infinite thickness")
	// ErrInteriorThickness indicates an interior layer whose thickness is
	// not a finite non-negative number.
	ErrInteriorThickness = errors.New("tmm: interior layers must have finite non-negative thickness")
	// ErrNonPositiveWavelength indicates a zero, negative or NaN vacuum wavelength.
	ErrNonPositiveWavelength = errors.New("tmm: wavelength must be positive")
	// ErrBadPolarization indicates a Polarization other than S or P.
	ErrBadPolarization = errors.New("tmm: polarization must be S or P")
)

// Polarization selects the electric-field orientation relative to the
// plane of incidence.
type Polarization int

const (
	// S keeps the electric field perpendicular to the plane of incidence
	// (TE). At normal incidence S and P coincide.
	S Polarization = iota
	// P keeps the electric field parallel to the plane of incidence (TM).
	P
)

// String implements fmt.Stringer.
func (p Polarization) String() string {
	switch p {
	case S:
		return "s"
	case P:
		return "p"
	default:
		return "invalid"
	}
}

// Result carries the power coefficients of one coherent evaluation.
// R is reflectance and T transmittance; for lossless stacks R+T ≈ 1.
type Result struct {
	R float64
	T float64
}
