// Package export writes swept spectra to disk in the archive CSV layout.
//
// What
//
//	Measurement archives pair every curve with the structure that produced
//	it. Exported files therefore open with a human-readable preamble
//	(label, porosity, pitch, pair count, layer split) before the
//	Wavelength,Reflectance rows, and the file name itself encodes the
//	geometry:
//
//	    TMM_<label>_<pairs>Pr_<period>nm_<porous>-<solid>_<percent>Pc.csv
//
//	Numeric name fields truncate toward zero, matching the long-standing
//	archive convention, so 97.3 nm files sort under 97nm.
//
// Errors: ErrEmptyResult, ErrLengthMismatch.
package export
