package whitespace

import (
	"strings"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

func init() {
	lint.MustRegister(SpaceIndent)
}

// SpaceIndent reports spaces preceding tabs in leading whitespace.
var SpaceIndent = lint.RuleDef{
	ID:          "no-space-indent",
	Name:        "whitespace.space_indent",
	Group:       "whitespace",
	Description: "Indentation should not mix spaces before tabs.",
	Severity:    lint.SeverityWarning,
	Check:       checkSpaceIndent,

	Rationale: `A space in front of a tab renders differently depending on the editor's
tab width, so the indentation no longer lines up for other readers. Mixed
indentation also breaks tools that infer nesting from leading whitespace.`,

	BadExample: " \tlet a = 1",

	GoodExample: "\tlet a = 1",

	Fix: "Use tabs only (or spaces only) for indentation on each line.",
}

func checkSpaceIndent(ctx lint.Context, _ map[string]any) []lint.Violation {
	indent := ctx.Line.Indent()

	spaceIdx := strings.IndexByte(indent, ' ')
	if spaceIdx < 0 {
		return nil
	}
	if !strings.ContainsRune(indent[spaceIdx:], '\t') {
		return nil
	}

	return []lint.Violation{{
		RuleID:   "no-space-indent",
		Severity: lint.SeverityWarning,
		Message:  "Space found before tab in indentation",
		Pos:      token.Position{Line: ctx.Line.Num, Column: spaceIdx + 1},
	}}
}
