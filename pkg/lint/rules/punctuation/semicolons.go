package punctuation

import (
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

func init() {
	lint.MustRegister(Semicolons)
}

// Semicolons reports semicolons outside strings and comments.
var Semicolons = lint.RuleDef{
	ID:          "no-semicolons",
	Name:        "punctuation.semicolons",
	Group:       "punctuation",
	Description: "Statements should not be terminated with semicolons.",
	Severity:    lint.SeverityError,
	Check:       checkSemicolons,

	Rationale: `The language does not require semicolons as statement terminators. They
add visual noise and encourage putting multiple statements on one line, which
hurts readability.`,

	BadExample: `let a = 1;
let b = 2; let c = 3;`,

	GoodExample: `let a = 1
let b = 2
let c = 3`,

	Fix: "Remove the semicolon. Put each statement on its own line.",
}

func checkSemicolons(ctx lint.Context, _ map[string]any) []lint.Violation {
	var violations []lint.Violation

	code := ctx.Line.Code()
	for i := 0; i < len(code); i++ {
		if code[i] == ';' {
			violations = append(violations, lint.Violation{
				RuleID:   "no-semicolons",
				Severity: lint.SeverityError,
				Message:  "Semicolons should be omitted",
				Pos:      token.Position{Line: ctx.Line.Num, Column: i + 1},
			})
		}
	}

	return violations
}
