package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/leapstack-labs/leapstyle/pkg/core"
	"gopkg.in/yaml.v3"
)

// Validate checks if the configuration is valid. Invalid values are
// configuration errors and abort before any scan runs.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "", "auto", "text", "markdown", "md", "json":
	default:
		return fmt.Errorf("invalid output format %q (want auto, text, markdown, or json)", c.OutputFormat)
	}

	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0, got %d", c.Jobs)
	}
	if c.MaxWarnings < -1 {
		return fmt.Errorf("max_warnings must be >= -1, got %d", c.MaxWarnings)
	}

	for id, sev := range c.Severity {
		if _, ok := core.ParseSeverity(sev); !ok {
			return fmt.Errorf("invalid severity %q for rule %q (want error, warning, info, or hint)", sev, id)
		}
	}

	for _, ext := range c.Extensions {
		if ext == "" || ext[0] != '.' {
			return fmt.Errorf("invalid extension %q (must start with a dot)", ext)
		}
	}

	return nil
}

// UnknownRules returns the rule IDs referenced by the config that the
// given predicate does not recognize. The doctor command uses this to
// flag stale or misspelled IDs.
func (c *Config) UnknownRules(known func(id string) bool) []string {
	var unknown []string
	seen := make(map[string]bool)
	note := func(id string) {
		if !known(id) && !seen[id] {
			seen[id] = true
			unknown = append(unknown, id)
		}
	}

	for _, id := range c.Disabled {
		note(id)
	}
	for id := range c.Severity {
		note(id)
	}
	for id := range c.Rules {
		note(id)
	}
	return unknown
}

// knownFieldsSchema mirrors Config's yaml surface. Decoding the config
// file into it with KnownFields enabled rejects misspelled keys.
type knownFieldsSchema struct {
	Extensions   []string                  `yaml:"extensions"`
	OutputFormat string                    `yaml:"output"`
	Verbose      bool                      `yaml:"verbose"`
	NoColor      bool                      `yaml:"no_color"`
	Jobs         int                       `yaml:"jobs"`
	MaxWarnings  int                       `yaml:"max_warnings"`
	BaselinePath string                    `yaml:"baseline"`
	RuleDirs     []string                  `yaml:"rule_dirs"`
	Disabled     []string                  `yaml:"disabled"`
	Severity     map[string]string         `yaml:"severity"`
	Rules        map[string]map[string]any `yaml:"rules"`
}

// validateKnownFields decodes the config file strictly and reports the
// first unknown key as a configuration error.
func validateKnownFields(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path was located by the config search
	if err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var schema knownFieldsSchema
	if err := dec.Decode(&schema); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return nil
}
