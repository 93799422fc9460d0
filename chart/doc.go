// Package chart renders swept spectra as publication-style line charts.
//
// What
//
//	A reflectance curve is judged by eye first: stopband position, fringe
//	contrast, how two etches differ. chart turns one or more labeled
//	Series into a single image with sensible axes, a legend and a grid,
//	using the gonum plotting stack. The output format follows the file
//	extension (png, svg, pdf, ...).
//
// Rendering is tuned through functional options: WithTitle, WithXRange,
// WithYRange, WithSize.
//
// Errors: ErrNoSeries, ErrLengthMismatch.
package chart
