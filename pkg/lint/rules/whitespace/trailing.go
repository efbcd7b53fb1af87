package whitespace

import (
	"strings"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

func init() {
	lint.MustRegister(TrailingWhitespace)
}

// TrailingWhitespace reports spaces or tabs at the end of a line.
var TrailingWhitespace = lint.RuleDef{
	ID:          "no-trailing-whitespace",
	Name:        "whitespace.trailing",
	Group:       "whitespace",
	Description: "Lines should not end with trailing whitespace.",
	Severity:    lint.SeverityWarning,
	Check:       checkTrailingWhitespace,
	ConfigKeys:  []string{"ignore_blank_lines"},

	Rationale: `Trailing whitespace is invisible in most editors but shows up in diffs
and churns version control history when other tools strip it.`,

	BadExample: "let a = 1 ",

	GoodExample: "let a = 1",

	Fix: "Delete the trailing spaces or tabs. Most editors can do this on save.",
}

func checkTrailingWhitespace(ctx lint.Context, opts map[string]any) []lint.Violation {
	text := ctx.Line.Text
	trimmed := strings.TrimRight(text, " \t")
	if trimmed == text {
		return nil
	}

	if lint.GetBoolOption(opts, "ignore_blank_lines", false) && trimmed == "" {
		return nil
	}

	return []lint.Violation{{
		RuleID:   "no-trailing-whitespace",
		Severity: lint.SeverityWarning,
		Message:  "Trailing whitespace should be trimmed",
		Pos:      token.Position{Line: ctx.Line.Num, Column: len(trimmed) + 1},
	}}
}
