// Package config loads run configuration for the brica command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scheduler kinds accepted in a run configuration.
const (
	KindVirtualTimeSync = "virtual_time_sync"
	KindVirtualTime     = "virtual_time"
	KindRealTimeSync    = "real_time_sync"
)

// ComponentConfig describes one demo component bound to the run.
type ComponentConfig struct {
	Name     string  `yaml:"name"`
	Interval float64 `yaml:"interval"`
	Offset   float64 `yaml:"offset"`
	// Work is simulated seconds of wall-clock work per fire. Only
	// meaningful for real time runs.
	Work float64 `yaml:"work"`
}

// Config is a full run configuration.
type Config struct {
	Scheduler  string            `yaml:"scheduler"`  // one of the Kind constants
	Interval   float64           `yaml:"interval"`   // seconds per step (unused by virtual_time)
	Steps      int               `yaml:"steps"`      // number of steps to run
	TraceFile  string            `yaml:"trace_file"` // JSON-lines step trace ("" disables)
	LogLevel   string            `yaml:"log_level"`  // debug, info, warn, error
	LogFormat  string            `yaml:"log_format"` // text or json
	Components []ComponentConfig `yaml:"components"`
}

// Default returns sensible defaults: ten lockstep virtual steps of one
// second, text logging at info level, no trace file.
func Default() Config {
	return Config{
		Scheduler: KindVirtualTimeSync,
		Interval:  1.0,
		Steps:     10,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads a YAML configuration file. Absent fields keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the scheduler kind and numeric ranges.
func (c Config) Validate() error {
	switch c.Scheduler {
	case KindVirtualTimeSync, KindVirtualTime, KindRealTimeSync:
	default:
		return fmt.Errorf("unknown scheduler kind %q", c.Scheduler)
	}
	if c.Scheduler != KindVirtualTime && c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", c.Steps)
	}
	for _, cc := range c.Components {
		if cc.Interval <= 0 {
			return fmt.Errorf("component %q: interval must be positive, got %v", cc.Name, cc.Interval)
		}
		if cc.Offset < 0 {
			return fmt.Errorf("component %q: offset must be non-negative, got %v", cc.Name, cc.Offset)
		}
	}
	return nil
}
