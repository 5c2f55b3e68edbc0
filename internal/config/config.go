package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, loaded from environment variables.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	DataDir string `env:"DATA_DIR" envDefault:"data"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
