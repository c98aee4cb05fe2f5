// Package config loads the optional YAML configuration for the serve
// command. Flags override file values; unset fields keep defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr     string `yaml:"addr"`
	DataDir  string `yaml:"dataDir"`
	Solver   string `yaml:"solver"`
	LogLevel string `yaml:"logLevel"`
}

func Default() Config {
	return Config{
		Addr:     ":8080",
		DataDir:  "./data",
		Solver:   "bitset",
		LogLevel: "info",
	}
}

// Load reads path over the defaults. An empty path returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
