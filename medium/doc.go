// Package medium maps porosity fractions to effective refractive indices.
//
// What
//
//	A porous film is a two-phase mixture of a solid skeleton and the void
//	filling. For feature sizes far below the wavelength the mixture acts
//	as a homogeneous medium whose permittivity is the volume average of
//	the two phases:
//
//	    n_eff² = (1-p)·n_solid² + p·n_void²
//
//	where p is the void volume fraction. EffectiveIndex implements this
//	mixing rule; EffectiveIndices applies it across a porosity profile.
//
// Contracts
//
//   - p = 0 reproduces n_solid exactly, p = 1 reproduces n_void exactly.
//   - The rule is monotone in p whenever n_solid > n_void.
//
// Units: refractive indices are dimensionless; porosity is a fraction of 1.
package medium
