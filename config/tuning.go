package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTuning overlays a YAML tuning file onto the built-in simulation
// defaults and installs the result as Sim. Keys missing from the file keep
// their default values.
func LoadTuning(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning: %w", err)
	}
	t, err := ParseTuning(raw)
	if err != nil {
		return err
	}
	Sim = t
	return nil
}

// ParseTuning decodes YAML on top of DefaultSimulation.
func ParseTuning(raw []byte) (SimulationConfig, error) {
	t := DefaultSimulation()
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning yaml: %w", err)
	}
	return t, nil
}
