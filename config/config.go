// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jongio/jdk-core/pathutil"
)

// Duration wraps time.Duration so YAML can carry values like "10s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler accepting Go duration strings.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns the standard duration formatting.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// Config is the scan configuration for the jdk-probe CLI.
type Config struct {
	// ExtraRoots lists additional directories whose children are probed.
	ExtraRoots []string `yaml:"extra_roots"`

	// SkipWellKnown disables the platform's well-known installation
	// roots.
	SkipWellKnown bool `yaml:"skip_well_known"`

	// Timeout bounds each probe subprocess. Zero keeps the default.
	Timeout Duration `yaml:"timeout"`

	// Output selects the CLI output format ("default" or "json").
	Output string `yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Output: "default"}
}

// Load reads and validates a YAML configuration file. Roots are expanded
// (home directory, environment placeholders) at load time.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 - path is user-supplied by design
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Output == "" {
		cfg.Output = "default"
	}
	if cfg.Output != "default" && cfg.Output != "json" {
		return cfg, fmt.Errorf("invalid output format %q (expected \"default\" or \"json\")", cfg.Output)
	}
	if cfg.Timeout < 0 {
		return cfg, fmt.Errorf("invalid timeout %s (must not be negative)", cfg.Timeout)
	}

	for i, root := range cfg.ExtraRoots {
		expanded, err := pathutil.Expand(root)
		if err != nil {
			return cfg, fmt.Errorf("failed to expand root %q: %w", root, err)
		}
		cfg.ExtraRoots[i] = expanded
	}

	return cfg, nil
}
