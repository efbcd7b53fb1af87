// Package core defines shared types used across the linter: severities,
// rule metadata, and the rule configuration block that both the CLI config
// loader and the scanner consume.
package core

// StyleConfig holds rule configuration as written in leapstyle.yaml.
type StyleConfig struct {
	// Disabled contains rule IDs to disable
	Disabled []string `koanf:"disabled" yaml:"disabled"`

	// Severity maps rule ID to severity override (error, warning, info, hint)
	Severity map[string]string `koanf:"severity" yaml:"severity"`

	// Rules contains rule-specific options keyed by rule ID
	Rules map[string]RuleOptions `koanf:"rules" yaml:"rules"`
}

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any
