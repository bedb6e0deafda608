package module

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional project file ("ddlc.yaml") a caller may place
// next to its module sources: a list of module search paths plus a
// default rendering format for the doc/stub generators (§4.6 AMBIENT
// STACK's configuration entry). LoadConfig parses and validates these
// fields; the compiler and the CLI do not read them.
type Config struct {
	SearchPaths   []string `yaml:"search_paths"`
	DefaultOutput string   `yaml:"default_output"`
}

// DefaultConfig is what a project gets when no ddlc.yaml is present.
func DefaultConfig() *Config {
	return &Config{SearchPaths: []string{"."}, DefaultOutput: "markdown"}
}

// LoadConfig reads and parses a ddlc.yaml project file. A missing file is
// not an error — callers get DefaultConfig back — since the config file
// is optional by design, not a required project manifest.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields a hand-edited ddlc.yaml is most likely to get
// wrong, field by field with a named error for each, rather than letting a
// bad value surface later as a confusing search-path or render failure.
func (c *Config) Validate() error {
	if len(c.SearchPaths) == 0 {
		return fmt.Errorf("search_paths: must list at least one path")
	}
	for _, p := range c.SearchPaths {
		if p == "" {
			return fmt.Errorf("search_paths: empty entry")
		}
	}
	switch c.DefaultOutput {
	case "markdown", "gostub":
	default:
		return fmt.Errorf("default_output: %q must be \"markdown\" or \"gostub\"", c.DefaultOutput)
	}
	return nil
}
