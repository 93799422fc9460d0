// Package scenario runs batches of reflector sweeps described in YAML.
//
// What
//
//	A study rarely simulates one structure: it compares etches, porosities
//	and stacked designs against each other. A scenario file captures the
//	whole batch declaratively:
//
//	    output: runs/etch-a
//	    plot: spectra.png
//	    dispersion: GaN_Barker-o.csv      # optional, µm table
//	    grading: {count: 45, factor: 1, exponent: 0.125}
//	    media: {solid: 2.38, substrate: 1.76}
//	    structures:
//	      - label: All_45
//	        period: 97.3
//	        ratio: 0.345
//	        porosity: 0.45
//	        repeats: 12
//	        template: 3400
//	      - label: Top_90
//	        period: 97.3
//	        ratio: 0.345
//	        porosity: 0.90
//	        repeats: 5
//	      - label: Bot_45
//	        period: 97.3
//	        ratio: 0.345
//	        porosity: 0.45
//	        repeats: 7
//	        template: 3400
//	        top: Top_90
//
//	Structures referenced by a top field are building blocks: they join
//	the referencing stack on the ambient side and are not swept alone.
//	Everything else is swept, exported as CSV, and optionally rendered
//	into one chart.
//
// Contracts
//
//   - Labels must be present and unique; top references must resolve and
//     never point at their own structure.
//   - Missing output, grading and media fields fall back to the reference
//     defaults (see ApplyDefaults).
//   - Physical parameters are validated by the grade and stack packages
//     when the structures are built, with the offending label wrapped in.
//
// Errors: ErrNoStructures, ErrNoLabel, ErrDuplicateLabel, ErrUnknownTop,
// ErrSelfTop.
package scenario
