package whitespace

import (
	"fmt"
	"unicode/utf8"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

func init() {
	lint.MustRegister(LineLength)
}

// LineLength reports lines longer than the configured maximum.
var LineLength = lint.RuleDef{
	ID:          "line-length",
	Name:        "whitespace.line_length",
	Group:       "whitespace",
	Description: "Lines should fit within the configured maximum length.",
	Severity:    lint.SeverityWarning,
	Check:       checkLineLength,
	ConfigKeys:  []string{"max_length"},

	Rationale: `Long lines force horizontal scrolling and make side-by-side diffs
unreadable. Length is measured in characters, not bytes, so multibyte text
is not penalized.`,

	Fix: "Break the line at an operator or argument boundary, or extract a local binding.",
}

func checkLineLength(ctx lint.Context, opts map[string]any) []lint.Violation {
	maxLength := lint.GetIntOption(opts, "max_length", 120)

	length := utf8.RuneCountInString(ctx.Line.Text)
	if length <= maxLength {
		return nil
	}

	return []lint.Violation{{
		RuleID:   "line-length",
		Severity: lint.SeverityWarning,
		Message:  fmt.Sprintf("Line exceeds %d characters (found %d)", maxLength, length),
		Pos:      token.Position{Line: ctx.Line.Num, Column: maxLength + 1},
	}}
}
