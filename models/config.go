package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CoordsConfig maps a normalized template name to groups of field names
// that together encode a coordinate on that template, e.g. separate
// degree/minute/second/direction fields on an infobox.
type CoordsConfig struct {
	ExtraCoords map[string][][]string `yaml:"extra_coords"`
}

// LoadCoordsConfig reads and parses a YAML coordinate field-group file.
func LoadCoordsConfig(path string) (*CoordsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coords config: %w", err)
	}

	var cfg CoordsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse coords config: %w", err)
	}

	return &cfg, nil
}
