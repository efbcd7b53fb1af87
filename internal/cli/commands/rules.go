package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/leapstyle/internal/cli/output"
	"github.com/leapstack-labs/leapstyle/pkg/core"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	_ "github.com/leapstack-labs/leapstyle/pkg/lint/rules" // register builtin rules
	"github.com/spf13/cobra"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group    string // Filter by group
	Severity string // Filter by default severity
	Format   string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available style rules",
		Long: `List all registered style rules with their documentation.

Rules are organized by group (punctuation, whitespace, naming, structure,
comment). Pass a rule ID to see its full documentation including examples
and fix guidance.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  leapstyle rules

  # Show details for a specific rule
  leapstyle rules no-semicolons

  # List whitespace rules only
  leapstyle rules --group whitespace

  # List error-severity rules
  leapstyle rules --severity error

  # Output as JSON
  leapstyle rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVar(&opts.Severity, "severity", "", "Filter by default severity")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

func rulesRenderer(cmd *cobra.Command, opts *RulesOptions) *output.Renderer {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
		if cmdCtx.Cfg.NoColor {
			r.DisableColor()
		}
	}
	return r
}

// allRuleInfo snapshots the registry as documentation DTOs, in
// registration order.
func allRuleInfo() []core.RuleInfo {
	rules := lint.DefaultRegistry().All()
	infos := make([]core.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, lint.GetRuleInfo(rule))
	}
	return infos
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := rulesRenderer(cmd, opts)

	infos := allRuleInfo()
	infos = filterRuleInfo(infos, opts)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, infos)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, infos)
	default:
		return listRulesText(r, infos)
	}
}

func filterRuleInfo(infos []core.RuleInfo, opts *RulesOptions) []core.RuleInfo {
	if opts.Group == "" && opts.Severity == "" {
		return infos
	}

	var filtered []core.RuleInfo
	for _, info := range infos {
		if opts.Group != "" && info.Group != opts.Group {
			continue
		}
		if opts.Severity != "" && info.DefaultSeverity.String() != strings.ToLower(opts.Severity) {
			continue
		}
		filtered = append(filtered, info)
	}
	return filtered
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	r := rulesRenderer(cmd, opts)

	rule, ok := lint.DefaultRegistry().Get(ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	info := lint.GetRuleInfo(rule)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		return showRuleMarkdown(r, info)
	default:
		return showRuleText(r, info)
	}
}

// listRulesText renders the rule table for terminals.
func listRulesText(r *output.Renderer, infos []core.RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Style Rules (%d)", len(infos))))
	r.Println("")

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Group", "Severity", "Description"})

	for _, info := range infos {
		id := info.ID
		if info.Origin == "script" {
			id += " *"
		}
		t.AppendRow(table.Row{
			id,
			info.Group,
			severityCell(styles, info.DefaultSeverity),
			info.Description,
		})
	}
	t.Render()

	r.Println("")
	r.Println(styles.Muted.Render("Use 'leapstyle rules <rule-id>' for detailed documentation"))
	r.Println("")

	return nil
}

func severityCell(styles *output.Styles, sev core.Severity) string {
	switch sev {
	case core.SeverityError:
		return styles.Error.Render(sev.String())
	case core.SeverityWarning:
		return styles.Warning.Render(sev.String())
	case core.SeverityInfo:
		return styles.Info.Render(sev.String())
	default:
		return styles.Muted.Render(sev.String())
	}
}

// listRulesMarkdown renders the rule list as markdown grouped by category.
func listRulesMarkdown(r *output.Renderer, infos []core.RuleInfo) error {
	r.Println("# Style Rules")
	r.Println("")

	currentGroup := ""
	for _, info := range infos {
		if info.Group != currentGroup {
			currentGroup = info.Group
			r.Println("## " + capitalizeFirst(currentGroup))
			r.Println("")
		}
		r.Printf("- **%s** (`%s`) - %s\n", info.ID, info.DefaultSeverity.String(), info.Description)
	}

	r.Println("")
	return nil
}

// RulesJSONOutput is the JSON output structure for the rules listing.
type RulesJSONOutput struct {
	Rules []core.RuleInfo `json:"rules"`
	Count int             `json:"count"`
}

func listRulesJSON(r *output.Renderer, infos []core.RuleInfo) error {
	return r.JSON(RulesJSONOutput{Rules: infos, Count: len(infos)})
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, info core.RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", info.ID, info.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), info.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), info.DefaultSeverity.String())
	r.Printf("  %s: %s\n", styles.Bold.Render("Origin"), info.Origin)
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + info.Description)
	r.Println("")

	if info.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		for _, line := range strings.Split(info.Rationale, "\n") {
			r.Println("  " + line)
		}
		r.Println("")
	}

	if info.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(info.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if info.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(info.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if info.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + info.Fix)
		r.Println("")
	}

	if len(info.ConfigKeys) > 0 {
		r.Println(styles.Bold.Render("Configuration"))
		r.Printf("  Options: %s\n", strings.Join(info.ConfigKeys, ", "))
		r.Println("")
	}

	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, info core.RuleInfo) error {
	r.Printf("# %s - %s\n\n", info.ID, info.Name)
	r.Printf("**Group:** %s | **Severity:** `%s` | **Origin:** %s\n\n", info.Group, info.DefaultSeverity.String(), info.Origin)
	r.Println(info.Description)
	r.Println("")

	if info.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(info.Rationale)
		r.Println("")
	}

	if info.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```swift")
		r.Println(info.BadExample)
		r.Println("```")
		r.Println("")
	}

	if info.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("```swift")
		r.Println(info.GoodExample)
		r.Println("```")
		r.Println("")
	}

	if info.Fix != "" {
		r.Println("## How to Fix")
		r.Println("")
		r.Println(info.Fix)
		r.Println("")
	}

	if len(info.ConfigKeys) > 0 {
		r.Println("## Configuration")
		r.Println("")
		r.Printf("Options: `%s`\n", strings.Join(info.ConfigKeys, "`, `"))
		r.Println("")
	}

	return nil
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
