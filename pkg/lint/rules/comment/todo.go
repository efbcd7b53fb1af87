// Package comment provides lint rules about comment content.
package comment

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

func init() {
	lint.MustRegister(TodoComment)
}

// TodoComment reports TODO-style markers left in comments.
var TodoComment = lint.RuleDef{
	ID:          "no-todo-comment",
	Name:        "comment.todo",
	Group:       "comment",
	Description: "Comments should not carry unresolved TODO markers.",
	Severity:    lint.SeverityInfo,
	Check:       checkTodoComment,
	ConfigKeys:  []string{"markers"},

	Rationale: `TODO markers rot: they outlive their authors and hide real work from
the issue tracker. Filing a ticket keeps the work visible and the code
honest about what it does today.`,

	BadExample: `// TODO: handle the error`,

	GoodExample: `// Error handling tracked in PAY-341.`,

	Fix: "Move the work item to the issue tracker and reference it, or do the work.",
}

var defaultMarkers = []string{"TODO", "FIXME"}

func checkTodoComment(ctx lint.Context, opts map[string]any) []lint.Violation {
	markers := lint.GetStringSliceOption(opts, "markers", defaultMarkers)

	comment := ctx.Line.Comment()
	var violations []lint.Violation
	for _, marker := range markers {
		idx := strings.Index(comment, marker)
		if idx < 0 {
			continue
		}
		violations = append(violations, lint.Violation{
			RuleID:   "no-todo-comment",
			Severity: lint.SeverityInfo,
			Message:  fmt.Sprintf("Comment contains %s marker", marker),
			Pos:      token.Position{Line: ctx.Line.Num, Column: idx + 1},
		})
	}

	return violations
}
