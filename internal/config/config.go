package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS       = 18
	DefaultClimbRate = 10
	DefaultTheme     = "default"
	DefaultBackend   = BackendTea

	BackendTea   = "tea"
	BackendTcell = "tcell"
)

// Config holds the user preferences read from config.yaml.
type Config struct {
	FPS       int    `yaml:"fps"`
	Flying    bool   `yaml:"flying"`
	Escapable bool   `yaml:"escapable"`
	ClimbRate int    `yaml:"climb_rate"`
	Theme     string `yaml:"theme"`
	Backend   string `yaml:"backend"`
	Directory string `yaml:"directory"`
	LogFile   string `yaml:"log_file"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:       DefaultFPS,
		ClimbRate: DefaultClimbRate,
		Theme:     DefaultTheme,
		Backend:   DefaultBackend,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/sl/config.yaml or its platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sl", "config.yaml"), nil
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var ErrInvalid = errors.New("config: invalid value")

// Validate checks ranges and names.
func (c *Config) Validate() error {
	if c.FPS < 1 {
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	}
	if c.ClimbRate < 1 {
		return fmt.Errorf("%w: climb_rate %d", ErrInvalid, c.ClimbRate)
	}
	switch c.Backend {
	case BackendTea, BackendTcell:
	default:
		return fmt.Errorf("%w: backend %q", ErrInvalid, c.Backend)
	}
	return nil
}
