package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/porogan/braggsim/scenario"
)

var (
	runOutput  string
	runPlot    string
	runWorkers int
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Sweep the structures of a scenario and export their spectra",
	Long: `Load a scenario file, sweep the reflectance spectrum of every
standalone structure and write one CSV per sweep into the output
directory. When the scenario names a plot file, all curves are rendered
into a single chart there as well.

Flags override the corresponding scenario fields. Values from the
braggsim config file or environment fill in when neither is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSweepAction(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "output directory (overrides the scenario)")
	runCmd.Flags().StringVar(&runPlot, "plot", "", "chart file name (overrides the scenario)")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "parallel wavelength workers (0 = all CPUs)")
}

// runSweepAction implements the core logic for the run command.
func runSweepAction(cmd *cobra.Command, path string) error {
	slog.Info("loading scenario", "path", path)

	sc, err := scenario.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	applyOverrides(cmd, sc)

	slog.Info("scenario loaded",
		"structures", len(sc.Structures), "output", sc.Output, "workers", sc.Workers)

	report, err := scenario.Run(cmd.Context(), sc)
	if err != nil {
		return err
	}

	for _, p := range report.CSVPaths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	if report.PlotPath != "" {
		fmt.Fprintln(cmd.OutOrStdout(), report.PlotPath)
	}

	return nil
}

// applyOverrides layers flag and config values over the loaded scenario.
// Precedence: flag, then scenario file, then config file or environment.
func applyOverrides(cmd *cobra.Command, sc *scenario.Scenario) {
	switch {
	case cmd.Flags().Changed("output"):
		sc.Output = runOutput
	case sc.Output == scenario.DefaultOutput && viper.GetString("output") != "":
		sc.Output = viper.GetString("output")
	}

	if cmd.Flags().Changed("plot") {
		sc.Plot = runPlot
	}

	switch {
	case cmd.Flags().Changed("workers"):
		sc.Workers = runWorkers
	case sc.Workers == 0 && viper.GetInt("workers") > 0:
		sc.Workers = viper.GetInt("workers")
	}
}
