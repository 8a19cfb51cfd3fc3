package rowan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig configures the window and frame loop. The zero value is usable;
// applyDefaults fills in 800x600 at 60 TPS.
type RunConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Debug  bool   `yaml:"debug"`

	// ClearColor fills the screen before each frame renders.
	ClearColor Color `yaml:"-"`
}

func (c *RunConfig) applyDefaults() {
	if c.Title == "" {
		c.Title = "Rowan Game"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
}

// LoadConfig reads a RunConfig from a YAML file. Missing fields fall back to
// the same defaults New applies.
func LoadConfig(path string) (RunConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("load config: %w", err)
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}
