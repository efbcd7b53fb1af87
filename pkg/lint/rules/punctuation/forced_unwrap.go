package punctuation

import (
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

func init() {
	lint.MustRegister(ForcedUnwrap)
}

// ForcedUnwrap reports postfix ! used to force-unwrap an optional.
var ForcedUnwrap = lint.RuleDef{
	ID:          "no-forced-unwrap",
	Name:        "punctuation.forced_unwrap",
	Group:       "punctuation",
	Description: "Optionals should be unwrapped safely instead of force-unwrapped.",
	Severity:    lint.SeverityWarning,
	Check:       checkForcedUnwrap,

	Rationale: `Force-unwrapping crashes the program when the optional is nil. Safe
unwrapping with if-let, guard-let, or nil coalescing makes the nil case
explicit and recoverable.`,

	BadExample: `let name = user.name!
print(results.first!.id)`,

	GoodExample: `guard let name = user.name else { return }
if let first = results.first {
    print(first.id)
}`,

	Fix: "Unwrap with if let, guard let, optional chaining (?.), or ?? with a default.",
}

// isIdentByte reports bytes that can end an identifier.
func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// wordEndingAt returns the identifier word whose last byte is at index i.
func wordEndingAt(s string, i int) string {
	start := i
	for start > 0 && isIdentByte(s[start-1]) {
		start--
	}
	return s[start : i+1]
}

func checkForcedUnwrap(ctx lint.Context, _ map[string]any) []lint.Violation {
	var violations []lint.Violation

	code := ctx.Line.Code()
	for i := 0; i < len(code); i++ {
		if code[i] != '!' {
			continue
		}
		// != is comparison, not unwrapping.
		if i+1 < len(code) && code[i+1] == '=' {
			continue
		}
		// Postfix position only: prefix ! is negation.
		if i == 0 {
			continue
		}
		prev := code[i-1]
		if !isIdentByte(prev) && prev != ')' && prev != ']' {
			continue
		}
		// try! and as! are separate constructs, not optional unwraps.
		if isIdentByte(prev) {
			switch wordEndingAt(code, i-1) {
			case "try", "as":
				continue
			}
		}

		violations = append(violations, lint.Violation{
			RuleID:   "no-forced-unwrap",
			Severity: lint.SeverityWarning,
			Message:  "Avoid force-unwrapping optionals",
			Pos:      token.Position{Line: ctx.Line.Num, Column: i + 1},
		})
	}

	return violations
}
