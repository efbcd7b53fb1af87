package commands

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/leapstyle/internal/cli/config"
	"github.com/leapstack-labs/leapstyle/internal/cli/output"
	"github.com/leapstack-labs/leapstyle/internal/rulescript"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	_ "github.com/leapstack-labs/leapstyle/pkg/lint/rules" // register builtin rules
	"github.com/spf13/cobra"
)

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the project's leapstyle setup",
		Long: `Check the environment and configuration for problems.

The report covers:
- Config file discovery and validity
- Rule references (disabled/severity/options) against the registry
- Baseline store reachability
- Custom rule scripts

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Run the setup check
  leapstyle doctor

  # Output as JSON
  leapstyle doctor --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json")

	return cmd
}

// DoctorCheck is one line of the doctor report.
type DoctorCheck struct {
	Group  string `json:"group"`
	Name   string `json:"name"`
	Status string `json:"status"` // "pass", "warn", "fail"
	Detail string `json:"detail,omitempty"`
}

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	Checks  []DoctorCheck `json:"checks"`
	Healthy bool          `json:"healthy"`
}

func runDoctor(cmd *cobra.Command, format string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
		if cmdCtx.Cfg.NoColor {
			r.DisableColor()
		}
	}

	checks := collectDoctorChecks(cmdCtx)

	healthy := true
	for _, c := range checks {
		if c.Status == "fail" {
			healthy = false
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(DoctorOutput{Checks: checks, Healthy: healthy})
	}

	renderDoctorText(r, checks, healthy)

	if !healthy {
		return fmt.Errorf("doctor found configuration problems")
	}
	return nil
}

func collectDoctorChecks(cmdCtx *CommandContext) []DoctorCheck {
	cfg := cmdCtx.Cfg
	var checks []DoctorCheck

	// Config file
	if path := config.GetConfigFileUsed(); path != "" {
		checks = append(checks, DoctorCheck{
			Group: "config", Name: "config file", Status: "pass", Detail: path,
		})
	} else {
		checks = append(checks, DoctorCheck{
			Group: "config", Name: "config file", Status: "warn",
			Detail: "no leapstyle.yaml found, using defaults",
		})
	}

	// Rule references
	reg := lint.DefaultRegistry()
	unknown := cfg.UnknownRules(func(id string) bool {
		_, ok := reg.Get(id)
		return ok
	})
	if len(unknown) == 0 {
		checks = append(checks, DoctorCheck{
			Group: "rules", Name: "rule references", Status: "pass",
			Detail: fmt.Sprintf("%d rules registered", reg.Count()),
		})
	} else {
		checks = append(checks, DoctorCheck{
			Group: "rules", Name: "rule references", Status: "fail",
			Detail: "unknown rule IDs in config: " + strings.Join(unknown, ", "),
		})
	}

	// Rule scripts: load into a scratch registry so the doctor never
	// mutates the catalog the other commands use.
	for _, dir := range cfg.RuleDirs {
		scratch := lint.NewRegistry()
		for _, rule := range reg.All() {
			scratch.MustRegister(rule)
		}
		n, err := rulescript.NewLoader(scratch, cmdCtx.Logger).LoadDir(dir)
		switch {
		case err != nil:
			checks = append(checks, DoctorCheck{
				Group: "rules", Name: "rule scripts", Status: "fail",
				Detail: err.Error(),
			})
		case n == 0:
			checks = append(checks, DoctorCheck{
				Group: "rules", Name: "rule scripts", Status: "warn",
				Detail: fmt.Sprintf("no .star files in %s", dir),
			})
		default:
			checks = append(checks, DoctorCheck{
				Group: "rules", Name: "rule scripts", Status: "pass",
				Detail: fmt.Sprintf("%d rules from %s", n, dir),
			})
		}
	}

	// Baseline store
	if _, err := os.Stat(cfg.BaselinePath); os.IsNotExist(err) {
		checks = append(checks, DoctorCheck{
			Group: "baseline", Name: "baseline store", Status: "warn",
			Detail: "no baseline written yet",
		})
	} else {
		store, err := openBaselineStore(cmdCtx)
		if err != nil {
			checks = append(checks, DoctorCheck{
				Group: "baseline", Name: "baseline store", Status: "fail",
				Detail: err.Error(),
			})
		} else {
			set, loadErr := store.Load()
			_ = store.Close()
			if loadErr != nil {
				checks = append(checks, DoctorCheck{
					Group: "baseline", Name: "baseline store", Status: "fail",
					Detail: loadErr.Error(),
				})
			} else {
				checks = append(checks, DoctorCheck{
					Group: "baseline", Name: "baseline store", Status: "pass",
					Detail: fmt.Sprintf("%d accepted violations", set.Len()),
				})
			}
		}
	}

	return checks
}

func renderDoctorText(r *output.Renderer, checks []DoctorCheck, healthy bool) {
	titler := cases.Title(language.English)

	r.Println("")
	r.Header(1, "leapstyle doctor")
	r.Println("")

	currentGroup := ""
	for _, c := range checks {
		if c.Group != currentGroup {
			currentGroup = c.Group
			r.Header(2, titler.String(currentGroup))
		}
		status := map[string]string{"pass": "success", "warn": "warning", "fail": "failed"}[c.Status]
		r.StatusLine(c.Name, status, c.Detail)
	}

	r.Println("")
	if healthy {
		r.Success("Setup looks good")
	} else {
		r.Error("Fix the failed checks above, then re-run 'leapstyle doctor'")
	}
}
