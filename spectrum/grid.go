package spectrum

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sweep grid constants. Constant-index sweeps cover the fixed band
// [MinWavelengthNm, MaxWavelengthNm] with GridSamples points; dispersive
// sweeps walk the table domain at UnitStepNm and never pass the ceiling.
const (
	MinWavelengthNm = 200.0
	MaxWavelengthNm = 1000.0
	GridSamples     = 800
	UnitStepNm      = 1.0
)

// UniformGrid returns samples equally spaced wavelengths over
// [minNm, maxNm], endpoints included. Nonsense ranges (samples < 2 or
// maxNm ≤ minNm) yield nil.
func UniformGrid(minNm, maxNm float64, samples int) []float64 {
	if samples < 2 || maxNm <= minNm {
		return nil
	}
	return floats.Span(make([]float64, samples), minNm, maxNm)
}

// UnitGrid returns wavelengths from minNm upward in UnitStepNm steps,
// stopping at the last step at or below maxNm. A collapsed range yields
// the single point minNm; maxNm < minNm or non-finite bounds yield nil.
func UnitGrid(minNm, maxNm float64) []float64 {
	if maxNm < minNm ||
		math.IsNaN(minNm) || math.IsInf(minNm, 0) ||
		math.IsNaN(maxNm) || math.IsInf(maxNm, 0) {
		return nil
	}
	grid := make([]float64, int(math.Floor(maxNm-minNm))+1)
	for i := range grid {
		grid[i] = minNm + float64(i)*UnitStepNm
	}
	return grid
}
