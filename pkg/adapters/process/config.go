package process

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProcessConfig binds an effect name (usually a use-case title) to a command.
type ProcessConfig struct {
	Name        string            `yaml:"name" json:"name" mapstructure:"name"`
	Command     string            `yaml:"command" json:"command" mapstructure:"command"`
	Args        []string          `yaml:"args" json:"args" mapstructure:"args"`
	Environment map[string]string `yaml:"env" json:"env" mapstructure:"env"`
	Description string            `yaml:"description" json:"description" mapstructure:"description"`
}

// ConfigFile represents the structure of effects.yaml.
type ConfigFile struct {
	Effects []ProcessConfig `yaml:"effects" json:"effects"`
}

// LoadEffects reads a configuration file (YAML or JSON) and returns a map of
// effect names to configs. A missing file yields an empty map.
func LoadEffects(path string) (map[string]ProcessConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]ProcessConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read effects config: %w", err)
	}

	var cfg ConfigFile
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return Index(cfg.Effects), nil
}

// Index keys configs by name, skipping unnamed entries.
func Index(configs []ProcessConfig) map[string]ProcessConfig {
	effects := make(map[string]ProcessConfig)
	for _, effect := range configs {
		if effect.Name == "" {
			continue
		}
		effects[effect.Name] = effect
	}
	return effects
}
