package naming

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

func init() {
	lint.MustRegister(TypeNameCapitalized)
}

// TypeNameCapitalized reports type declarations whose name starts with a
// lowercase letter.
var TypeNameCapitalized = lint.RuleDef{
	ID:          "type-name-capitalized",
	Name:        "naming.type_name",
	Group:       "naming",
	Description: "Type names should start with an uppercase letter.",
	Severity:    lint.SeverityError,
	Check:       checkTypeName,

	Rationale: `Uppercase type names and lowercase value names are how readers tell
types and values apart at a glance. A lowercase type name reads as a
variable everywhere it is used.`,

	BadExample: `struct wallet {}
enum direction { case north }`,

	GoodExample: `struct Wallet {}
enum Direction { case north }`,

	Fix: "Rename the type to UpperCamelCase.",
}

// typeKeywords introduce a named type declaration.
var typeKeywords = map[string]bool{
	"struct":    true,
	"class":     true,
	"enum":      true,
	"protocol":  true,
	"actor":     true,
	"typealias": true,
}

// notTypeNames are keywords that can follow a type keyword without naming
// a type, e.g. "class func" declares a type method.
var notTypeNames = map[string]bool{
	"func":      true,
	"var":       true,
	"let":       true,
	"init":      true,
	"deinit":    true,
	"subscript": true,
}

func checkTypeName(ctx lint.Context, _ map[string]any) []lint.Violation {
	var violations []lint.Violation

	ids := identifiers(ctx.Line.Code())
	for i := 0; i+1 < len(ids); i++ {
		if !typeKeywords[ids[i].text] {
			continue
		}
		name := ids[i+1]
		if notTypeNames[name.text] {
			continue
		}
		first, _ := utf8.DecodeRuneInString(name.text)
		if !unicode.IsLower(first) {
			continue
		}

		violations = append(violations, lint.Violation{
			RuleID:   "type-name-capitalized",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("Type name '%s' should start with an uppercase letter", name.text),
			Pos:      token.Position{Line: ctx.Line.Num, Column: name.col},
		})
	}

	return violations
}
