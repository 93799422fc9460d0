// Package spectrum sweeps porous reflector stacks across wavelength and
// collects reflectance spectra.
//
// 🚀 What does a sweep do?
//
//	A reflector design fixes geometry; what an experiment measures is
//	reflectance against wavelength. spectrum bridges the two: it resolves
//	segments into an optical stack (package stack), evaluates it per
//	wavelength (package tmm), and gathers the curve.
//
//	Two modes exist, switched by Options.Dispersion:
//
//	  constant   nil table - one stack, evaluated on a fixed 800-point
//	             grid over [200,1000] nm.
//	  dispersive table set - 1 nm steps across the table domain, capped
//	             at 1000 nm; the solid index is looked up and the stack
//	             rebuilt at every wavelength, with a Snapshot recording
//	             the indices used.
//
// ✨ Key features:
//   - embarrassingly parallel: wavelengths fan out over an errgroup with
//     a worker cap, results land at their grid position
//   - deterministic output order regardless of scheduling
//   - pluggable Solver for experiments beyond plain reflectance
//   - first error cancels the remaining wavelengths
//
// ⚙️ Usage:
//
//	import "github.com/porogan/braggsim/spectrum"
//
//	opts := spectrum.DefaultOptions()
//	opts.Workers = 4
//	res, err := spectrum.Run(ctx, segs, opts)
//	// res.Wavelengths[i] ↔ res.Reflectance[i]
//
// Errors: ErrEmptyGrid, plus whatever the stack, dispersion and tmm
// packages report, wrapped with the offending wavelength.
package spectrum
