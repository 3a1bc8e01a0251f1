package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/playback"
)

const (
	DefaultAlgorithm = string(algorithms.Bubble)
	DefaultTheme     = "default"
	DefaultLogLevel  = "warn"
	DefaultDataDir   = ".algoviz"
)

type Config struct {
	Algorithm    string `yaml:"algorithm"`
	Speed        int    `yaml:"speed"`
	ArraySize    int    `yaml:"array_size"`
	CustomInput  string `yaml:"custom_input,omitempty"`
	SearchTarget *int   `yaml:"search_target,omitempty"`
	Seed         int64  `yaml:"seed"`
	Theme        string `yaml:"theme"`
	DataDir      string `yaml:"data_dir"`
	LogLevel     string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Speed:     playback.DefaultSpeed,
		ArraySize: input.DefaultSize,
		Theme:     DefaultTheme,
		DataDir:   DefaultDataDir,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads a YAML config on top of the defaults and normalizes it. Numeric
// options are clamped; an algorithm name that does not resolve is an error
// wrapping trace.ErrInvalidInput.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if strings.TrimSpace(cfg.Algorithm) != "" {
		if _, err := algorithms.ParseID(cfg.Algorithm); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	cfg.Normalize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Normalize clamps numeric fields into range and fills empty strings with
// defaults. Unknown algorithm names fall back to DefaultAlgorithm.
func (c *Config) Normalize() {
	c.Speed = playback.ClampSpeed(c.Speed)
	c.ArraySize = input.ClampSize(c.ArraySize)

	if id, err := algorithms.ParseID(c.Algorithm); err == nil {
		c.Algorithm = string(id)
	} else {
		c.Algorithm = DefaultAlgorithm
	}
	if strings.TrimSpace(c.Theme) == "" {
		c.Theme = DefaultTheme
	}
	if strings.TrimSpace(c.DataDir) == "" {
		c.DataDir = DefaultDataDir
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func (c *Config) AlgorithmID() algorithms.ID { return algorithms.ID(c.Algorithm) }

// Values returns the configured array: parsed custom input when any token is
// usable, otherwise nil so callers generate ArraySize random values.
func (c *Config) Values() []int {
	if c.CustomInput == "" {
		return nil
	}
	return input.ParseList(c.CustomInput)
}

// NewInput builds the input manager the config describes.
func (c *Config) NewInput() *input.Manager {
	if values := c.Values(); len(values) > 0 {
		return input.FromValues(values, c.Seed)
	}
	m := input.NewManager(c.Seed)
	m.Generate(c.ArraySize)
	return m
}

// SessionOptions maps speed and target to playback options.
func (c *Config) SessionOptions() []playback.Option {
	opts := []playback.Option{playback.WithSpeed(c.Speed)}
	if c.SearchTarget != nil {
		opts = append(opts, playback.WithTarget(*c.SearchTarget))
	}
	return opts
}
