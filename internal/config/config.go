// Package config loads butterfly.yaml.
package config

import (
	"fmt"
	"os"

	"github.com/aretw0/butterfly/pkg/adapters/process"
	"github.com/aretw0/butterfly/pkg/adapters/redis"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "butterfly.yaml"

// Config is the decoded form of butterfly.yaml.
type Config struct {
	// Diagram is a YAML file or a Loam directory. Empty means the built-in
	// forum demo.
	Diagram  string `mapstructure:"diagram"`
	Actor    string `mapstructure:"actor"`
	LogLevel string `mapstructure:"log_level"`

	HTTP    HTTPConfig    `mapstructure:"http"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Metrics MetricsConfig `mapstructure:"metrics"`

	Effects []process.ProcessConfig `mapstructure:"effects"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// RedisConfig enables effect dispatch to a Redis list when Addr is set.
type RedisConfig struct {
	Addr string `mapstructure:"addr"`
	Key  string `mapstructure:"key"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel: "info",
		HTTP:     HTTPConfig{Addr: ":8080"},
		Redis:    RedisConfig{Key: redis.DefaultKey},
		Metrics:  MetricsConfig{Enabled: true},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode merges raw YAML into cfg. Keys absent from data keep their value.
func Decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if raw == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

// EffectRegistry indexes the configured process effects by name.
func (c Config) EffectRegistry() map[string]process.ProcessConfig {
	return process.Index(c.Effects)
}
