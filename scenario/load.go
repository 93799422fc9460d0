package scenario

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Load reads a scenario file, applies defaults and validates it.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open: %w", err)
	}
	defer f.Close()

	var sc Scenario
	if err := yaml.NewDecoder(f).Decode(&sc); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}

	sc.ApplyDefaults()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}
