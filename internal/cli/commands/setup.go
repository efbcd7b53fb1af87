package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/leapstack-labs/leapstyle/internal/cli/config"
	"github.com/leapstack-labs/leapstyle/internal/cli/output"
	"github.com/leapstack-labs/leapstyle/pkg/core"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's loaded
// configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
	if cfg.NoColor {
		r.DisableColor()
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables and defaults.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	cwd, _ := os.Getwd()
	return &config.Config{
		Extensions:   config.DefaultExtensions(),
		OutputFormat: getEnvOrDefault("LEAPSTYLE_OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv("LEAPSTYLE_VERBOSE") == "true",
		MaxWarnings:  config.DefaultMaxWarnings,
		BaselinePath: getEnvOrDefault("LEAPSTYLE_BASELINE", config.DefaultBaselinePath),
		ProjectRoot:  cwd,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// buildLintConfig builds the scanner configuration from the project's rule
// block plus CLI --disable overrides.
func buildLintConfig(style *core.StyleConfig, disable []string) *lint.Config {
	lintCfg := lint.NewConfig()

	// Apply project config first (lower precedence)
	if style != nil {
		for _, id := range style.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range style.Severity {
			if s, ok := lint.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(id, s)
			}
		}
		for id, ruleOpts := range style.Rules {
			lintCfg.SetRuleOptions(id, ruleOpts)
		}
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	return lintCfg
}

// severityStyle renders a fixed-width "severity:" label in its color.
// Padding goes after the colon so the token stays `<severity>:`.
func severityStyle(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error:") + "  "
	case lint.SeverityWarning:
		return r.Styles().Warning.Render("warning:")
	case lint.SeverityInfo:
		return r.Styles().Info.Render("info:") + "   "
	case lint.SeverityHint:
		return r.Styles().Muted.Render("hint:") + "   "
	default:
		return r.Styles().Muted.Render("unknown:")
	}
}
