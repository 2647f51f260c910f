// Package scenario loads YAML scenario files describing a demo or
// benchmark world to build over an ecs.Registry: how many entities to
// create and which component mix to assign them, grounded on
// gonewx-pvz's split between a TOML/config layer and separate YAML data
// files for describing game content.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ComponentMix names a component type and the fraction of entities (0.0–1.0)
// that should receive it when the scenario is instantiated.
type ComponentMix struct {
	Name     string  `yaml:"name"`
	Fraction float64 `yaml:"fraction"`
}

// Scenario describes a world to build for a CLI run: how many entities, and
// which components to scatter across them.
type Scenario struct {
	Name       string          `yaml:"name"`
	Entities   int             `yaml:"entities"`
	Components []ComponentMix  `yaml:"components"`
	Ticks      int             `yaml:"ticks"`
}

// Load reads and parses a scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Entities < 0 {
		return nil, fmt.Errorf("scenario %s: entities must be non-negative, got %d", path, s.Entities)
	}
	for _, c := range s.Components {
		if c.Fraction < 0 || c.Fraction > 1 {
			return nil, fmt.Errorf("scenario %s: component %q fraction %v out of [0,1]", path, c.Name, c.Fraction)
		}
	}
	return &s, nil
}

// Default returns a small built-in scenario used when the CLI is invoked
// without a -scenario flag.
func Default() *Scenario {
	return &Scenario{
		Name:     "default",
		Entities: 10_000,
		Components: []ComponentMix{
			{Name: "position", Fraction: 1.0},
			{Name: "velocity", Fraction: 0.5},
			{Name: "health", Fraction: 0.25},
		},
		Ticks: 1000,
	}
}
