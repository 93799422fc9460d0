package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porogan/braggsim/scenario"
)

// writeQuickScenario drops a minimal scenario file into a temp dir and
// returns its path together with the output directory it points at.
func writeQuickScenario(t *testing.T) (path, out string) {
	t.Helper()

	dir := t.TempDir()
	out = filepath.Join(dir, "out")
	path = filepath.Join(dir, "scenario.yaml")
	body := fmt.Sprintf(`
output: %s
grading:
  count: 3
structures:
  - label: quick
    period: 100
    ratio: 0.4
    porosity: 0.45
    repeats: 1
`, out)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path, out
}

// resetRunFlags clears the flag-bound globals and the viper state so
// tests do not leak into each other.
func resetRunFlags(t *testing.T) {
	t.Helper()

	runOutput, runPlot, runWorkers = "", "", 0
	for _, name := range []string{"output", "plot", "workers"} {
		f := runCmd.Flags().Lookup(name)
		require.NotNil(t, f)
		f.Changed = false
	}
	viper.Reset()
}

func TestApplyOverrides(t *testing.T) {
	defer resetRunFlags(t)

	tests := []struct {
		name        string
		flags       map[string]string
		config      map[string]any
		scenario    scenario.Scenario
		wantOutput  string
		wantPlot    string
		wantWorkers int
	}{
		{
			name:        "scenario-values-survive-untouched",
			scenario:    scenario.Scenario{Output: "from-file", Plot: "a.png", Workers: 8},
			wantOutput:  "from-file",
			wantPlot:    "a.png",
			wantWorkers: 8,
		},
		{
			name:        "flags-override-everything",
			flags:       map[string]string{"output": "flagged", "plot": "b.svg", "workers": "2"},
			config:      map[string]any{"output": "cfg", "workers": 5},
			scenario:    scenario.Scenario{Output: "from-file", Workers: 8},
			wantOutput:  "flagged",
			wantPlot:    "b.svg",
			wantWorkers: 2,
		},
		{
			name:        "config-fills-defaults",
			config:      map[string]any{"output": "cfg", "workers": 5},
			scenario:    scenario.Scenario{Output: scenario.DefaultOutput},
			wantOutput:  "cfg",
			wantWorkers: 5,
		},
		{
			name:        "config-never-beats-explicit-file-values",
			config:      map[string]any{"output": "cfg", "workers": 5},
			scenario:    scenario.Scenario{Output: "from-file", Workers: 8},
			wantOutput:  "from-file",
			wantWorkers: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetRunFlags(t)
			for k, v := range tt.config {
				viper.Set(k, v)
			}
			for k, v := range tt.flags {
				require.NoError(t, runCmd.Flags().Set(k, v))
			}

			sc := tt.scenario
			applyOverrides(runCmd, &sc)

			assert.Equal(t, tt.wantOutput, sc.Output)
			assert.Equal(t, tt.wantPlot, sc.Plot)
			assert.Equal(t, tt.wantWorkers, sc.Workers)
		})
	}
}

func TestRunCommand(t *testing.T) {
	resetRunFlags(t)
	defer resetRunFlags(t)

	scPath, _ := writeQuickScenario(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"run", scPath})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	csvPath := strings.TrimSpace(buf.String())
	assert.Contains(t, csvPath, "TMM_quick_1Pr_100nm_40-60_45Pc.csv")
	_, err := os.Stat(csvPath)
	assert.NoError(t, err, "exported CSV exists")
}
