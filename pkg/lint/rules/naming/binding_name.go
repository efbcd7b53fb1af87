package naming

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

func init() {
	lint.MustRegister(BindingNameLowercase)
}

// BindingNameLowercase reports let/var bindings whose name starts with an
// uppercase letter.
var BindingNameLowercase = lint.RuleDef{
	ID:          "var-name-lowercase",
	Name:        "naming.binding_name",
	Group:       "naming",
	Description: "Binding names should start with a lowercase letter.",
	Severity:    lint.SeverityWarning,
	Check:       checkBindingName,

	Rationale: `Values use lowerCamelCase so they never read as types. This applies to
constants too; there is no ALL_CAPS convention.`,

	BadExample: `let MaxRetries = 3
var UserName = "anna"`,

	GoodExample: `let maxRetries = 3
var userName = "anna"`,

	Fix: "Rename the binding to lowerCamelCase.",
}

func checkBindingName(ctx lint.Context, _ map[string]any) []lint.Violation {
	var violations []lint.Violation

	ids := identifiers(ctx.Line.Code())
	for i := 0; i+1 < len(ids); i++ {
		if ids[i].text != "let" && ids[i].text != "var" {
			continue
		}
		name := ids[i+1]
		first, _ := utf8.DecodeRuneInString(name.text)
		if !unicode.IsUpper(first) {
			continue
		}

		violations = append(violations, lint.Violation{
			RuleID:   "var-name-lowercase",
			Severity: lint.SeverityWarning,
			Message:  fmt.Sprintf("Binding name '%s' should start with a lowercase letter", name.text),
			Pos:      token.Position{Line: ctx.Line.Num, Column: name.col},
		})
	}

	return violations
}
