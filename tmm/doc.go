// Package tmm evaluates coherent reflection and transmission of planar
// multilayer stacks with the transfer-matrix method.
//
// 🚀 What is the transfer-matrix method?
//
//	Light crossing a stack of thin films picks up a phase in every layer
//	and splits at every interface. Both effects are linear in the field
//	amplitudes, so each layer contributes a 2×2 complex matrix and the
//	whole stack collapses into a single matrix product. Reflectance and
//	transmittance fall out of the product's entries.
//
// ✨ Key features:
//   - s- and p-polarization at arbitrary incidence angle
//   - complex refractive indices (absorbing layers) supported
//   - semi-infinite boundary media expressed as d = +Inf sentinels
//   - single O(layers) pass, no allocations beyond the angle cache
//
// ⚙️ Usage:
//
//	import "github.com/porogan/braggsim/tmm"
//
//	n := []complex128{1, 2.38, 1.76}            // air | GaN | sapphire
//	d := []float64{math.Inf(1), 47.3, math.Inf(1)}
//	res, err := tmm.Coherent(tmm.S, n, d, 0, 450)
//	// res.R is reflectance, res.T transmittance
//
// Contracts
//
//   - len(n) == len(d) and ≥ 2; first and last d must be +Inf.
//   - Interior thicknesses must be finite and non-negative.
//   - Wavelength and thicknesses share one length unit (nanometers here).
//   - Inputs are read-only; Coherent never writes through its slices.
//
// Errors: ErrLayerMismatch, ErrTooFewLayers, ErrFiniteBoundary,
// ErrInteriorThickness, ErrNonPositiveWavelength, ErrBadPolarization.
package tmm
