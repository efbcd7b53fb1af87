package whitespace

import (
	"fmt"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

func init() {
	lint.MustRegister(BlankLineRuns)
}

// BlankLineRuns reports runs of consecutive blank lines longer than the
// configured maximum.
var BlankLineRuns = lint.RuleDef{
	ID:          "no-blank-line-runs",
	Name:        "whitespace.blank_line_runs",
	Group:       "whitespace",
	Description: "Consecutive blank lines should be collapsed.",
	Severity:    lint.SeverityWarning,
	Check:       checkBlankLineRuns,
	ConfigKeys:  []string{"max_blank_lines"},

	Rationale: `One blank line is enough to separate logical sections. Larger gaps
spread code out without adding structure and usually survive from deleted
blocks.`,

	BadExample: `let a = 1



let b = 2`,

	GoodExample: `let a = 1

let b = 2`,

	Fix: "Collapse the run to a single blank line.",
}

func checkBlankLineRuns(ctx lint.Context, opts map[string]any) []lint.Violation {
	maxBlank := lint.GetIntOption(opts, "max_blank_lines", 1)

	if !ctx.Line.IsBlank() {
		return nil
	}

	// Length of the blank run ending on this line.
	run := 1
	for i := ctx.Line.Num - 2; i >= 0 && ctx.File.Lines[i].IsBlank(); i-- {
		run++
	}

	// Report once per run, on the first line past the limit.
	if run != maxBlank+1 {
		return nil
	}

	return []lint.Violation{{
		RuleID:   "no-blank-line-runs",
		Severity: lint.SeverityWarning,
		Message:  fmt.Sprintf("More than %d consecutive blank lines", maxBlank),
		Pos:      token.Position{Line: ctx.Line.Num},
	}}
}
