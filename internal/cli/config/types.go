// Package config loads and validates leapstyle CLI configuration.
//
// Configuration is layered: defaults, then leapstyle.yaml (found by an
// upward directory search), then LEAPSTYLE_* environment variables, then
// explicitly set CLI flags. The rule configuration block (disabled,
// severity, rules) shares its shape with pkg/core so the scanner config
// can be built from it directly.
package config

import "github.com/leapstack-labs/leapstyle/pkg/core"

// RuleOptions is an alias for the shared rule options type.
// This allows CLI code to use config.RuleOptions without importing pkg/core.
type RuleOptions = core.RuleOptions

// StyleConfig is an alias for the shared rule configuration block.
type StyleConfig = core.StyleConfig

// Config holds all CLI configuration options.
type Config struct {
	// Extensions lists the file extensions scanned during directory walks.
	Extensions []string `koanf:"extensions" yaml:"extensions"`

	// OutputFormat selects the renderer mode (auto, text, markdown, json).
	OutputFormat string `koanf:"output" yaml:"output"`

	Verbose bool `koanf:"verbose" yaml:"verbose"`
	NoColor bool `koanf:"no_color" yaml:"no_color"`

	// Jobs bounds the parallel file scans; 0 means one per CPU.
	Jobs int `koanf:"jobs" yaml:"jobs"`

	// MaxWarnings fails the check when warnings exceed it; -1 disables.
	MaxWarnings int `koanf:"max_warnings" yaml:"max_warnings"`

	// BaselinePath locates the accepted-violation store.
	BaselinePath string `koanf:"baseline" yaml:"baseline"`

	// RuleDirs lists directories scanned for Starlark rule scripts.
	RuleDirs []string `koanf:"rule_dirs" yaml:"rule_dirs"`

	// Rule configuration, same shape as core.StyleConfig.
	Disabled []string               `koanf:"disabled" yaml:"disabled"`
	Severity map[string]string      `koanf:"severity" yaml:"severity"`
	Rules    map[string]RuleOptions `koanf:"rules" yaml:"rules"`

	// ProjectRoot is the directory the config file was found in, or the
	// working directory. Relative paths resolve against it.
	ProjectRoot string `koanf:"-" yaml:"-"`
}

// Style returns the rule configuration block in its shared form.
func (c *Config) Style() *core.StyleConfig {
	return &core.StyleConfig{
		Disabled: c.Disabled,
		Severity: c.Severity,
		Rules:    c.Rules,
	}
}

// Default configuration values.
const (
	DefaultConfigName    = "leapstyle.yaml"
	DefaultConfigAltName = "leapstyle.yml"
	DefaultBaselinePath  = ".leapstyle/baseline.db"
	DefaultOutput        = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultMaxWarnings   = -1
)

// DefaultExtensions is the extension filter applied to directory walks
// when the config does not override it.
func DefaultExtensions() []string {
	return []string{".swift"}
}
