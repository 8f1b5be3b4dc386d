package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultElement     = "int"
	DefaultCapacity    = 4
	DefaultTheme       = "ocean"
	DefaultGraphHeight = 10
	DefaultGraphWidth  = 60
)

// Config describes a scripted run: the element kind, the starting
// capacity and the ops to apply.
type Config struct {
	Element  string      `yaml:"element"`
	Capacity int         `yaml:"capacity"`
	Ops      []string    `yaml:"ops"`
	Theme    string      `yaml:"theme"`
	Graph    GraphConfig `yaml:"graph"`
}

type GraphConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		Element:  DefaultElement,
		Capacity: DefaultCapacity,
		Theme:    DefaultTheme,
		Graph: GraphConfig{
			Height: DefaultGraphHeight,
			Width:  DefaultGraphWidth,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must be non-negative, got %d", c.Capacity)
	}
	if c.Graph.Height <= 0 || c.Graph.Width <= 0 {
		return fmt.Errorf("graph size must be positive, got %dx%d", c.Graph.Width, c.Graph.Height)
	}
	return nil
}

// Clone returns a deep copy, so presets can be modified safely.
func (c *Config) Clone() *Config {
	out := *c
	out.Ops = append([]string(nil), c.Ops...)
	return &out
}
