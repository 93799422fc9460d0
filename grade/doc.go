// Package grade builds symmetric graded porosity profiles for a single
// porous layer of a distributed Bragg reflector.
//
// What
//
//	Electrochemical etching does not produce a uniformly porous film: pore
//	density ramps up from the interface, plateaus, and ramps down again.
//	grade models that with a mirror-symmetric power-law profile resolved
//	into count sub-layers of equal thickness:
//
//	    raw[j] = 1 + factor·j^exponent      j = 0 .. ⌈count/2⌉-1
//
//	with the second half mirroring the first
//	(minus the shared midpoint). The raw shape is then rescaled so the
//	mean porosity over all sub-layers equals the requested target.
//
// Contracts
//
//   - count must be odd and ≥ 1 so the profile has a single midpoint.
//   - porosity must lie in (0,1); zero is rejected separately because the
//     normalization divides by it.
//   - thickness must be positive; every sub-layer gets thickness/count.
//   - Build returns a self-contained Profile backed by fresh slices.
//
// Errors: ErrEvenCount, ErrZeroPorosity, ErrPorosityRange,
// ErrNonPositiveThickness.
package grade
