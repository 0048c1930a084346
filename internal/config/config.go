// Package config loads cubesim settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
)

// Config holds cubesim settings. Environment variables override the file.
type Config struct {
	// DBPath is the run history database. Empty means ~/.cubesim/cubesim.db.
	DBPath string `yaml:"db_path" env:"CUBESIM_DB_PATH"`
	// ScrambleFile is a scramble list. Empty means the built-in list.
	ScrambleFile string `yaml:"scramble_file" env:"CUBESIM_SCRAMBLE_FILE"`
	DefaultLevel string `yaml:"default_level" env:"CUBESIM_LEVEL"`
	// Scheme is six color letters in U R F D L B order.
	Scheme   string `yaml:"scheme" env:"CUBESIM_SCHEME"`
	Color    bool   `yaml:"color" env:"CUBESIM_COLOR"`
	LogLevel string `yaml:"log_level" env:"CUBESIM_LOG_LEVEL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DefaultLevel: string(scramble.Simple),
		Scheme:       cube.DefaultScheme.String(),
		Color:        true,
		LogLevel:     "info",
	}
}

// DefaultPath returns ~/.cubesim/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubesim", "config.yaml"), nil
}

// Load reads the config file at path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("config.yaml: %w", err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var logLevels = []string{"trace", "debug", "info", "warn", "warning", "error"}

// Validate checks level, scheme and log level.
func (c Config) Validate() error {
	if _, err := scramble.ParseLevel(c.DefaultLevel); err != nil {
		return fmt.Errorf("default_level: %w", err)
	}
	if _, err := cube.ParseScheme(c.Scheme); err != nil {
		return fmt.Errorf("scheme %q: %w", c.Scheme, err)
	}
	level := strings.ToLower(c.LogLevel)
	for _, l := range logLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("log_level: unknown level %q", c.LogLevel)
}

// CubeScheme returns the parsed color scheme.
func (c Config) CubeScheme() cube.Scheme {
	s, err := cube.ParseScheme(c.Scheme)
	if err != nil {
		return cube.DefaultScheme
	}
	return s
}

// Level returns the parsed default level.
func (c Config) Level() scramble.Level {
	l, err := scramble.ParseLevel(c.DefaultLevel)
	if err != nil {
		return scramble.Simple
	}
	return l
}
