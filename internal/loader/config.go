package loader

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SimConfig describes a simulation run: which village to create and
// the server parameters to simulate under
type SimConfig struct {
	VillageType string          `yaml:"village_type"`
	Preset      string          `yaml:"preset"`
	Capital     bool            `yaml:"capital"`
	ServerSpeed float64         `yaml:"server_speed"`
	Resources   ResourcesConfig `yaml:"resources"`
}

// ResourcesConfig is the starting resource stock for a simulation
type ResourcesConfig struct {
	Wood float64 `yaml:"wood"`
	Clay float64 `yaml:"clay"`
	Iron float64 `yaml:"iron"`
	Crop float64 `yaml:"crop"`
}

// DefaultSimConfig returns the configuration used when no file is given:
// a fresh standard village on a 1x server
func DefaultSimConfig() SimConfig {
	return SimConfig{
		VillageType: "4-4-4-6",
		ServerSpeed: 1,
		Resources:   ResourcesConfig{Wood: 750, Clay: 750, Iron: 750, Crop: 750},
	}
}

// LoadSimConfig reads and validates a YAML simulation config file.
// Omitted keys keep their defaults.
func LoadSimConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultSimConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config for contradictions
func (c *SimConfig) Validate() error {
	if c.ServerSpeed <= 0 {
		return fmt.Errorf("server_speed must be positive, got %v", c.ServerSpeed)
	}
	if c.Preset != "" && c.VillageType != "" && c.VillageType != DefaultSimConfig().VillageType {
		return errors.New("set either preset or village_type, not both")
	}
	return nil
}
