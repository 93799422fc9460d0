// Package stack defines reflector structures, segments, media and the
// sentinel errors of assembly.
package stack

import (
	"errors"
	"math"

	"github.com/porogan/braggsim/grade"
)

// Sentinel errors for structure validation and assembly.
var (
	// ErrNoSegments indicates an assembly call without any segments.
	ErrNoSegments = errors.New("stack: at least one segment is required")
	// ErrNotGraded indicates a segment that repeats but whose porosity
	// profile is empty; repeats without a profile would build nothing
	// porous.
	ErrNotGraded = errors.New("stack: segment repeats require a porosity profile")
	// ErrNonPositivePeriod indicates a zero, negative or non-finite period.
	ErrNonPositivePeriod = errors.New("stack: period must be positive and finite")
	// ErrRatioRange indicates a porous ratio outside (0,1); both the solid
	// and the porous share of a period must exist.
	ErrRatioRange = errors.New("stack: porous ratio must lie in (0,1)")
	// ErrPorosityRange indicates a porosity outside [0,1). Zero passes
	// here and fails later, in grading, where the division by it lives.
	ErrPorosityRange = errors.New("stack: porosity must lie in [0,1)")
	// ErrNegativeRepeats indicates a repeat count below zero. Zero is
	// legal: the segment contributes no layers.
	ErrNegativeRepeats = errors.New("stack: repeats must not be negative")
	// ErrNegativeTemplate indicates a negative template thickness.
	ErrNegativeTemplate = errors.New("stack: template thickness must not be negative")
)

// Structure describes one periodic porous reflector: Repeats pairs of a
// solid spacer plus a graded porous layer, optionally sitting on a solid
// template.
type Structure struct {
	// Period is the pair pitch in nanometers, solid plus porous thickness.
	Period float64
	// Ratio is the porous share of the period, strictly between 0 and 1.
	Ratio float64
	// Porosity is the target mean void fraction of the porous layer.
	Porosity float64
	// Repeats is the number of solid/porous pairs. Zero is allowed and
	// assembles to nothing, which a composite uses to switch a segment
	// off.
	Repeats int
	// Template is an optional solid buffer in nanometers between the last
	// pair and the substrate; zero disables it.
	Template float64
}

// PorousThickness returns the porous share of one period in nanometers.
func (s Structure) PorousThickness() float64 { return s.Ratio * s.Period }

// SolidThickness returns the solid share of one period in nanometers.
func (s Structure) SolidThickness() float64 { return s.Period - s.PorousThickness() }

// Validate reports the first geometric violation, nil when sound.
// Porosity zero passes: it only becomes fatal when a profile is built
// around it (see package grade).
func (s Structure) Validate() error {
	if s.Period <= 0 || math.IsInf(s.Period, 0) || math.IsNaN(s.Period) {
		return ErrNonPositivePeriod
	}
	if s.Ratio <= 0 || s.Ratio >= 1 || math.IsNaN(s.Ratio) {
		return ErrRatioRange
	}
	if s.Porosity < 0 || s.Porosity >= 1 || math.IsNaN(s.Porosity) {
		return ErrPorosityRange
	}
	if s.Repeats < 0 {
		return ErrNegativeRepeats
	}
	if s.Template < 0 || math.IsInf(s.Template, 0) || math.IsNaN(s.Template) {
		return ErrNegativeTemplate
	}
	return nil
}

// Segment pairs a Structure with its resolved porosity profile.
type Segment struct {
	Structure Structure
	Profile   grade.Profile
}

// NewSegment validates s, builds its graded porosity profile from the
// grading parameters, and returns a ready-to-assemble segment. Grading
// failures surface as the grade package sentinels.
func NewSegment(s Structure, count int, factor, exponent float64) (Segment, error) {
	if err := s.Validate(); err != nil {
		return Segment{}, err
	}
	prof, err := grade.Build(count, factor, exponent, s.Porosity, s.PorousThickness())
	if err != nil {
		return Segment{}, err
	}
	return Segment{Structure: s, Profile: prof}, nil
}

// Media bundles the refractive indices around and inside a stack.
type Media struct {
	// Ambient is the incidence half-space index, usually air.
	Ambient float64
	// Solid is the skeleton index, GaN in the reference structures.
	Solid float64
	// Void is the index of whatever fills the pores.
	Void float64
	// Substrate is the exit half-space index, sapphire in the reference
	// structures.
	Substrate float64
}

// Stack is a fully resolved optical stack: parallel per-layer index and
// thickness lists with the semi-infinite boundary media first and last.
type Stack struct {
	Indices     []complex128
	Thicknesses []float64
}

// Len returns the number of layers including both boundary media.
func (st Stack) Len() int { return len(st.Indices) }
