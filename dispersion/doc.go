// Package dispersion turns measured refractive-index tables into
// wavelength lookups.
//
// What
//
//	Real materials disperse: the refractive index of GaN at 360 nm is far
//	from its value at 600 nm. Published ellipsometry tables sample n(λ)
//	at discrete wavelengths, usually in micrometers. This package loads
//	such two-column CSV tables, converts them to nanometers, and exposes
//	a piecewise-linear interpolating lookup over the sampled domain.
//
// Contracts
//
//   - Tables need at least two samples with strictly ascending wavelengths.
//   - Lookups outside the sampled domain fail with ErrOutOfRange; the data
//     is only trustworthy where it was measured, so there is no
//     extrapolation.
//   - A Table is immutable once built and safe for concurrent lookups.
//
// Errors: ErrOutOfRange, ErrTooFewPoints, ErrNotAscending, ErrBadTable.
package dispersion
