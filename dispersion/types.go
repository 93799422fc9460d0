// Package dispersion defines sentinel errors for table construction and
// lookup.
package dispersion

import "errors"

// Sentinel errors for dispersion tables.
var (
	// ErrOutOfRange indicates a lookup wavelength outside the sampled domain.
	ErrOutOfRange = errors.New("dispersion: wavelength outside the sampled domain")
	// ErrTooFewPoints indicates fewer than two samples, too few to interpolate.
	ErrTooFewPoints = errors.New("dispersion: a table needs at least two samples")
	// ErrNotAscending indicates wavelengths that do not ascend strictly.
	ErrNotAscending = errors.New("dispersion: wavelengths must ascend strictly")
	// ErrBadTable indicates a structurally broken table: mismatched columns,
	// unparseable or non-finite samples.
	ErrBadTable = errors.New("dispersion: malformed dispersion table")
)
