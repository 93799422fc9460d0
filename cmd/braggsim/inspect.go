package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/porogan/braggsim/dispersion"
	"github.com/porogan/braggsim/scenario"
	"github.com/porogan/braggsim/spectrum"
	"github.com/porogan/braggsim/stack"
)

// inspectCmd represents the inspect command.
var inspectCmd = &cobra.Command{
	Use:   "inspect <scenario.yaml>",
	Short: "Resolve a scenario and print its stacks without sweeping",
	Long: `Load a scenario file, grade every structure and print the stacking
order together with the wavelength grid the run command would sweep.
Nothing is computed or written, so inspect is the quick way to check a
scenario before a long batch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspectAction(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// runInspectAction implements the core logic for the inspect command.
func runInspectAction(cmd *cobra.Command, path string) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	resolved, err := scenario.Resolve(sc)
	if err != nil {
		return err
	}

	media := stack.Media{
		Ambient:   sc.Media.Ambient,
		Solid:     sc.Media.Solid,
		Void:      sc.Media.Void,
		Substrate: sc.Media.Substrate,
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "LABEL\tSEGMENTS\tLAYERS\tPAIRS\tPOROUS nm\tSOLID nm\tPOROSITY %\tTEMPLATE nm")
	for _, rv := range resolved {
		st, err := stack.Assemble(rv.Segments, media)
		if err != nil {
			return fmt.Errorf("structure %q: %w", rv.Label, err)
		}

		s := rv.Structure()
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.2f\t%.2f\t%.0f\t%.0f\n",
			rv.Label, len(rv.Segments), st.Len(), s.Repeats,
			s.PorousThickness(), s.SolidThickness(), s.Porosity*100, s.Template)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	if sc.Dispersion == "" {
		fmt.Fprintf(out, "grid: %d samples over [%.0f, %.0f] nm, constant solid index %.3f\n",
			spectrum.GridSamples, spectrum.MinWavelengthNm, spectrum.MaxWavelengthNm, sc.Media.Solid)
		return nil
	}

	tbl, err := dispersion.Load(sc.Dispersion)
	if err != nil {
		return fmt.Errorf("failed to load dispersion table: %w", err)
	}
	maxNm := math.Min(spectrum.MaxWavelengthNm, tbl.MaxNm())
	fmt.Fprintf(out, "grid: 1 nm steps over [%.0f, %.0f] nm from %s (%d knots)\n",
		tbl.MinNm(), maxNm, sc.Dispersion, tbl.Len())

	return nil
}
