package grade

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Build constructs a mirror-symmetric power-law porosity profile.
//
// count is the number of sub-layers (odd, ≥ 1), factor and exponent shape
// the power-law ramp, porosity is the target mean void fraction and
// thickness the full physical thickness of the graded layer in nanometers.
//
// Steps:
//  1. Validate parameters; see the package sentinel errors.
//  2. Fill the rising half raw[j] = 1 + factor·j^exponent for
//     j = 0..half-1, where half = (count+1)/2.
//  3. Mirror the rising half, minus the shared midpoint, onto the tail.
//  4. Rescale so the mean of the profile equals porosity.
//  5. Slice thickness into count equal sub-layers.
//
// Complexity: O(count) time and memory.
func Build(count int, factor, exponent, porosity, thickness float64) (Profile, error) {
	if count < 1 || count%2 == 0 {
		return Profile{}, ErrEvenCount
	}
	if porosity == 0 {
		return Profile{}, ErrZeroPorosity
	}
	if porosity < 0 || porosity >= 1 {
		return Profile{}, ErrPorosityRange
	}
	if thickness <= 0 {
		return Profile{}, ErrNonPositiveThickness
	}

	// Stage 2-3 - raw shape: rising power law, then its mirror image.
	// math.Pow(0, 0) == 1, so a zero exponent yields a flat profile.
	half := (count + 1) / 2
	raw := make([]float64, 0, count)
	for j := 0; j < half; j++ {
		raw = append(raw, 1+factor*math.Pow(float64(j), exponent))
	}
	for j := half - 2; j >= 0; j-- {
		raw = append(raw, raw[j])
	}

	// Stage 4 - rescale so mean(porosities) == porosity.
	scale := float64(count) * porosity / floats.Sum(raw)
	porosities := make([]float64, count)
	floats.ScaleTo(porosities, scale, raw)

	// Stage 5 - uniform sub-layer thicknesses.
	sub := thickness / float64(count)
	thicknesses := make([]float64, count)
	for i := range thicknesses {
		thicknesses[i] = sub
	}

	return Profile{Porosities: porosities, Thicknesses: thicknesses}, nil
}
