// Package stack resolves porous reflector descriptions into flat optical
// stacks ready for transfer-matrix evaluation.
//
// What
//
//	A porous distributed Bragg reflector is described compactly: a pair
//	pitch, the porous share of each pitch, a target porosity, a repeat
//	count and an optional solid template underneath. Evaluation however
//	needs the flat per-layer picture: one refractive index and one
//	thickness per physical layer, boundary half-spaces included. This
//	package owns that resolution step.
//
// Layout, from the incidence side:
//
//	[ambient ∞]
//	segment 1:  Repeats × ( [solid spacer] [graded sub-layers…] )
//	segment 2:  …
//	[template, solid, when the last segment carries one]
//	[substrate ∞]
//
// Contracts
//
//   - Segments stack in slice order, first segment nearest the ambient.
//   - A zero-repeat segment is legal and contributes no layers, so a
//     composite with its top switched off equals the bottom alone.
//   - Only the last segment's template is honored; interior templates
//     would sit between segments meant to join seamlessly.
//   - Boundary media are encoded with thickness +Inf, matching package tmm.
//   - Assemble reads its inputs and returns fresh slices.
//
// Errors: ErrNoSegments, ErrNotGraded, ErrNonPositivePeriod, ErrRatioRange,
// ErrPorosityRange, ErrNegativeRepeats, ErrNegativeTemplate.
package stack
