// Package structure provides lint rules about declaration layout.
package structure

import (
	"strings"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

func init() {
	lint.MustRegister(OpeningBraceSameLine)
}

// OpeningBraceSameLine reports opening braces placed alone on their own
// line instead of at the end of the declaration line.
var OpeningBraceSameLine = lint.RuleDef{
	ID:          "opening-brace-same-line",
	Name:        "structure.opening_brace",
	Group:       "structure",
	Description: "Opening braces belong on the same line as the declaration.",
	Severity:    lint.SeverityWarning,
	Check:       checkOpeningBrace,

	Rationale: `The 1TBS layout keeps the declaration and its body visually attached
and saves a line per block. A lone opening brace separates the signature
from the body without adding information.`,

	BadExample: `func total() -> Int
{
    return sum
}`,

	GoodExample: `func total() -> Int {
    return sum
}`,

	Fix: "Move the brace to the end of the previous line.",
}

func checkOpeningBrace(ctx lint.Context, _ map[string]any) []lint.Violation {
	if strings.TrimSpace(ctx.Line.Code()) != "{" {
		return nil
	}

	col := len(ctx.Line.Indent()) + 1
	return []lint.Violation{{
		RuleID:   "opening-brace-same-line",
		Severity: lint.SeverityWarning,
		Message:  "Opening brace should be on the previous line",
		Pos:      token.Position{Line: ctx.Line.Num, Column: col},
	}}
}
