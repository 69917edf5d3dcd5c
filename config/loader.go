package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the package defaults; only sections present in the file
// override them.
type fileConfig struct {
	Physics *PhysicsConfig `yaml:"physics"`
	Player  *PlayerConfig  `yaml:"player"`
	Space   *SpaceConfig   `yaml:"space"`
	Sim     *SimConfig     `yaml:"sim"`
}

// Load applies tuning overrides from a YAML file on top of the defaults.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	fc := fileConfig{
		Physics: &Physics,
		Player:  &Player,
		Space:   &Space,
		Sim:     &Sim,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
