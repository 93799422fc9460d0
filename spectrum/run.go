package spectrum

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/porogan/braggsim/medium"
	"github.com/porogan/braggsim/stack"
)

// Run sweeps reflectance across wavelength for the given segments.
//
// Without a dispersion table the stack is assembled once and evaluated on
// the fixed [MinWavelengthNm, MaxWavelengthNm] grid. With a table, every
// wavelength first looks up the solid index, rebuilds the stack around it
// and records a Snapshot of the indices in play.
//
// Wavelengths are independent, so Run fans them out across Options.Workers
// goroutines. Each result lands at its own grid position: the output order
// is deterministic regardless of scheduling. The first error cancels the
// remaining work through the errgroup context.
func Run(ctx context.Context, segs []stack.Segment, opts Options) (Result, error) {
	if opts.Solver == nil {
		opts.Solver = Reflectance
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Pre-flight assembly surfaces segment and structure errors before
	// any goroutine spins up, and doubles as the fixed stack in constant
	// mode.
	fixed, err := stack.Assemble(segs, opts.Media)
	if err != nil {
		return Result{}, err
	}

	if opts.Dispersion == nil {
		return runConstant(ctx, fixed, opts, workers)
	}
	return runDispersive(ctx, segs, opts, workers)
}

// runConstant evaluates one shared immutable stack per grid point.
func runConstant(ctx context.Context, st stack.Stack, opts Options, workers int) (Result, error) {
	grid := UniformGrid(MinWavelengthNm, MaxWavelengthNm, GridSamples)
	refl := make([]float64, len(grid))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, wl := range grid {
		i, wl := i, wl
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := opts.Solver(opts.Polarization, st.Indices, st.Thicknesses, opts.Angle, wl)
			if err != nil {
				return fmt.Errorf("spectrum: %g nm: %w", wl, err)
			}
			refl[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return Result{Wavelengths: grid, Reflectance: refl}, nil
}

// runDispersive rebuilds the stack per grid point around the table index.
func runDispersive(ctx context.Context, segs []stack.Segment, opts Options, workers int) (Result, error) {
	tbl := opts.Dispersion
	grid := UnitGrid(tbl.MinNm(), math.Min(MaxWavelengthNm, tbl.MaxNm()))
	if len(grid) == 0 {
		return Result{}, ErrEmptyGrid
	}

	refl := make([]float64, len(grid))
	snaps := make([]Snapshot, len(grid))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, wl := range grid {
		i, wl := i, wl
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			nSolid, err := tbl.Index(wl)
			if err != nil {
				return fmt.Errorf("spectrum: %g nm: %w", wl, err)
			}
			m := opts.Media
			m.Solid = nSolid
			st, err := stack.Assemble(segs, m)
			if err != nil {
				return fmt.Errorf("spectrum: %g nm: %w", wl, err)
			}
			r, err := opts.Solver(opts.Polarization, st.Indices, st.Thicknesses, opts.Angle, wl)
			if err != nil {
				return fmt.Errorf("spectrum: %g nm: %w", wl, err)
			}
			refl[i] = r

			graded := make([][]float64, len(segs))
			for s, sg := range segs {
				graded[s] = medium.EffectiveIndices(sg.Profile.Porosities, nSolid, m.Void)
			}
			snaps[i] = Snapshot{WavelengthNm: wl, SolidIndex: nSolid, Graded: graded}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return Result{Wavelengths: grid, Reflectance: refl, Snapshots: snaps}, nil
}
