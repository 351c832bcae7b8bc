package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mlrrts/homotopy/homotopy"
)

// Config mirrors the command line flags. Values from a config file are
// applied first; flags given explicitly override them.
type Config struct {
	Seed                 int64  `yaml:"seed,omitempty"`
	MaxBasePointAttempts int    `yaml:"max_base_point_attempts,omitempty"`
	KeyPointAttempts     int    `yaml:"key_point_attempts,omitempty"`
	Parallelism          int    `yaml:"parallelism,omitempty"`
	Output               string `yaml:"output,omitempty"`
	Format               string `yaml:"format,omitempty"`
	Verbose              bool   `yaml:"verbose,omitempty"`
}

func defaultConfig() Config {
	opts := homotopy.DefaultOptions()
	return Config{
		Seed:                 opts.Seed,
		MaxBasePointAttempts: opts.MaxBasePointAttempts,
		KeyPointAttempts:     homotopy.DefaultKeyPointAttempts,
		Parallelism:          opts.Parallelism,
		Format:               "yaml",
	}
}

// loadConfig overlays the YAML file at path on c.
func loadConfig(path string, c Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// options converts the configuration to decomposition options.
func (c Config) options() homotopy.Options {
	return homotopy.Options{
		Seed:                 c.Seed,
		MaxBasePointAttempts: c.MaxBasePointAttempts,
		Sampler:              homotopy.InteriorSampler{MaxAttempts: c.KeyPointAttempts},
		Parallelism:          c.Parallelism,
	}
}
