// Package config holds the application configuration for the md-render
// CLI and MCP server. The render engine itself takes options per call and
// never reads configuration.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Load for unset fields.
const (
	DefaultLogLevel      = "info"
	DefaultFallbackSlug  = "section"
	DefaultMaxInputBytes = 16 << 20 // 16 MiB ceiling keeps render latency bounded
)

// AppConfig holds the global application configuration
type AppConfig struct {
	LogLevel         string `yaml:"log_level,omitempty"`
	MaxInputBytes    int64  `yaml:"max_input_bytes,omitempty"`
	FallbackSlug     string `yaml:"fallback_slug,omitempty"`
	Diagnostics      bool   `yaml:"diagnostics,omitempty"`
	StripFrontMatter bool   `yaml:"strip_front_matter,omitempty"`
	NumWorkers       int    `yaml:"num_workers,omitempty"` // concurrent file renders in batch mode
}

// Default returns a config with all defaults filled in.
func Default() *AppConfig {
	return &AppConfig{
		LogLevel:      DefaultLogLevel,
		MaxInputBytes: DefaultMaxInputBytes,
		FallbackSlug:  DefaultFallbackSlug,
		NumWorkers:    runtime.NumCPU(),
	}
}

// Load reads a YAML config file and applies defaults for unset fields.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file '%s': %w", path, err)
	}
	cfg := &AppConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file '%s': %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.MaxInputBytes == 0 {
		c.MaxInputBytes = DefaultMaxInputBytes
	}
	if c.FallbackSlug == "" {
		c.FallbackSlug = DefaultFallbackSlug
	}
	if c.NumWorkers == 0 {
		c.NumWorkers = runtime.NumCPU()
	}
}

// Validate checks the configuration, returning non-fatal warnings and a
// fatal error for values the program cannot run with.
func (c *AppConfig) Validate() ([]string, error) {
	var warnings []string

	if c.MaxInputBytes < 0 {
		return warnings, fmt.Errorf("max_input_bytes must not be negative (got %d)", c.MaxInputBytes)
	}
	if c.NumWorkers < 0 {
		return warnings, fmt.Errorf("num_workers must not be negative (got %d)", c.NumWorkers)
	}
	if c.MaxInputBytes > 0 && c.MaxInputBytes < 1024 {
		warnings = append(warnings, fmt.Sprintf("max_input_bytes is very small (%d bytes); most documents will be rejected", c.MaxInputBytes))
	}
	if c.NumWorkers > 4*runtime.NumCPU() {
		warnings = append(warnings, fmt.Sprintf("num_workers (%d) far exceeds available CPUs (%d)", c.NumWorkers, runtime.NumCPU()))
	}
	for _, r := range c.FallbackSlug {
		if r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			continue
		}
		return warnings, fmt.Errorf("fallback_slug %q contains characters outside [a-z0-9-]", c.FallbackSlug)
	}

	return warnings, nil
}
