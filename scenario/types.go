// Package scenario defines the batch description schema, its defaults and
// validation sentinels.
package scenario

import (
	"errors"
	"fmt"

	"github.com/porogan/braggsim/spectrum"
)

// Sentinel errors for scenario validation.
var (
	// ErrNoStructures indicates a scenario without a single sweepable
	// structure.
	ErrNoStructures = errors.New("scenario: at least one sweepable structure is required")
	// ErrNoLabel indicates a structure entry missing its label.
	ErrNoLabel = errors.New("scenario: every structure needs a label")
	// ErrDuplicateLabel indicates two structures sharing a label.
	ErrDuplicateLabel = errors.New("scenario: structure labels must be unique")
	// ErrUnknownTop indicates a top reference naming no structure.
	ErrUnknownTop = errors.New("scenario: top reference names no structure")
	// ErrSelfTop indicates a structure stacking on itself.
	ErrSelfTop = errors.New("scenario: a structure cannot stack on itself")
)

// Defaults applied by ApplyDefaults when a scenario leaves fields out:
// the 11-step eighth-root grading of the reference etches.
const (
	DefaultOutput        = "out"
	DefaultGradeCount    = 11
	DefaultGradeFactor   = 1.0
	DefaultGradeExponent = 0.125
)

// Grading shapes the porosity profile shared by all structures.
type Grading struct {
	Count    int     `yaml:"count"`
	Factor   float64 `yaml:"factor"`
	Exponent float64 `yaml:"exponent"`
}

// MediaSpec carries the refractive indices of the sweep environment.
// Zero fields fall back to the reference defaults; an index of zero is
// never physical, so the zero value is free to mean "unset".
type MediaSpec struct {
	Ambient   float64 `yaml:"ambient"`
	Solid     float64 `yaml:"solid"`
	Void      float64 `yaml:"void"`
	Substrate float64 `yaml:"substrate"`
}

// StructureSpec is one reflector entry of a scenario file.
type StructureSpec struct {
	Label    string  `yaml:"label"`
	Period   float64 `yaml:"period"`
	Ratio    float64 `yaml:"ratio"`
	Porosity float64 `yaml:"porosity"`
	Repeats  int     `yaml:"repeats"`
	Template float64 `yaml:"template"`
	// Top names another structure stacked on the ambient side of this
	// one. Referenced structures become building blocks and are not
	// swept standalone.
	Top string `yaml:"top,omitempty"`
}

// Scenario is a batch description: output locations, shared physics and
// the structures to sweep.
type Scenario struct {
	Output     string          `yaml:"output"`
	Plot       string          `yaml:"plot,omitempty"`
	Workers    int             `yaml:"workers,omitempty"`
	Grading    Grading         `yaml:"grading"`
	Media      MediaSpec       `yaml:"media"`
	Dispersion string          `yaml:"dispersion,omitempty"`
	Structures []StructureSpec `yaml:"structures"`
}

// ApplyDefaults fills unset fields in place. The grading block defaults
// as a whole when count is unset, so factor 0 and exponent 0 stay usable
// as deliberate flat-profile choices.
func (sc *Scenario) ApplyDefaults() {
	if sc.Output == "" {
		sc.Output = DefaultOutput
	}
	if sc.Grading.Count == 0 {
		sc.Grading = Grading{
			Count:    DefaultGradeCount,
			Factor:   DefaultGradeFactor,
			Exponent: DefaultGradeExponent,
		}
	}
	if sc.Media.Ambient == 0 {
		sc.Media.Ambient = spectrum.DefaultAmbientIndex
	}
	if sc.Media.Solid == 0 {
		sc.Media.Solid = spectrum.DefaultSolidIndex
	}
	if sc.Media.Void == 0 {
		sc.Media.Void = spectrum.DefaultVoidIndex
	}
	if sc.Media.Substrate == 0 {
		sc.Media.Substrate = spectrum.DefaultSubstrateIndex
	}
}

// Validate checks referential integrity: labels present and unique, top
// references resolving, no self stacking, and at least one structure left
// to sweep standalone. Physical parameters are validated where they are
// consumed, by the grade and stack packages.
func (sc *Scenario) Validate() error {
	if len(sc.Structures) == 0 {
		return ErrNoStructures
	}

	seen := make(map[string]struct{}, len(sc.Structures))
	for _, st := range sc.Structures {
		if st.Label == "" {
			return ErrNoLabel
		}
		if _, dup := seen[st.Label]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, st.Label)
		}
		seen[st.Label] = struct{}{}
	}

	referenced := make(map[string]bool, len(sc.Structures))
	for _, st := range sc.Structures {
		if st.Top == "" {
			continue
		}
		if st.Top == st.Label {
			return fmt.Errorf("%w: %q", ErrSelfTop, st.Label)
		}
		if _, ok := seen[st.Top]; !ok {
			return fmt.Errorf("%w: %q wants %q", ErrUnknownTop, st.Label, st.Top)
		}
		referenced[st.Top] = true
	}

	for _, st := range sc.Structures {
		if !referenced[st.Label] {
			return nil
		}
	}
	return fmt.Errorf("%w: every structure is referenced as a top", ErrNoStructures)
}
