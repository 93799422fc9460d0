package medium

import "math"

// EffectiveIndex returns the effective refractive index of a two-phase
// mixture with void fraction porosity, solid-phase index solid and
// void-phase index void, by volume averaging of the permittivities:
//
//	n_eff = √((1-porosity)·solid² + porosity·void²)
//
// The function is total: no validation happens here. Callers that accept
// external input validate porosity up front (see package grade).
func EffectiveIndex(porosity, solid, void float64) float64 {
	return math.Sqrt((1-porosity)*solid*solid + porosity*void*void)
}

// EffectiveIndices applies EffectiveIndex to every entry of porosities and
// returns the results in a freshly allocated slice. The input slice is
// never modified.
//
// Complexity: O(len(porosities)) time and memory.
func EffectiveIndices(porosities []float64, solid, void float64) []float64 {
	out := make([]float64, len(porosities))
	for i, p := range porosities {
		out[i] = EffectiveIndex(p, solid, void)
	}
	return out
}
