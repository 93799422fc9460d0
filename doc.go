// Package braggsim simulates the reflectance of porous distributed Bragg
// reflectors, graded-porosity GaN mirrors on sapphire, with the
// transfer-matrix method.
//
// 🚀 What is braggsim?
//
//	A focused optical-simulation toolkit that brings together:
//		• Effective media: porosity to refractive index by volume averaging
//		• Graded profiles: symmetric power-law porosity ramps with a pinned mean
//		• Stack assembly: repeated bilayer pairs, solid templates, composites
//		• TMM solver: coherent 2×2 characteristic matrices, s and p, any angle
//		• Spectra: constant-index and dispersion-table sweeps, parallel by default
//		• Plumbing: archival CSV export, reflectance charts, YAML batch scenarios
//
// ✨ Why braggsim?
//
//   - Lab-faithful output: CSV preambles and file names follow the etching
//     group's archive convention, so simulated and measured spectra file together
//   - Deterministic: a sweep produces bit-identical spectra at any worker count
//   - Composable: every stage is a plain function over plain slices, so any
//     piece serves alone
//
// The packages stack up the way the physics does:
//
//	medium/     - porosity to effective refractive index
//	grade/      - symmetric power-law porosity profiles
//	stack/      - structures, segments and layer assembly
//	tmm/        - coherent transfer-matrix solver
//	dispersion/ - wavelength-dependent index tables (CSV, µm in, nm out)
//	spectrum/   - wavelength grids and parallel reflectance sweeps
//	export/     - archival CSV writer
//	chart/      - reflectance and contrast plots
//	scenario/   - YAML batch descriptions, end-to-end runs
//
// Quick sketch of an assembled stack:
//
//	air ········· semi-infinite ambient
//	├ solid GaN spacer     ┐
//	├ graded porous GaN    ┘ ×N pairs
//	├ GaN template
//	sapphire ···· semi-infinite substrate
//
// Dive into examples/polarization for a full study and cmd/braggsim for
// the command line.
//
//	go get github.com/porogan/braggsim
package braggsim
