package comment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	_ "github.com/leapstack-labs/leapstyle/pkg/lint/rules" // register rules
)

// Helper to scan text with a single rule and return its violations.
func runRule(t *testing.T, text string, ruleID string, opts map[string]any) []lint.Violation {
	t.Helper()
	rule, ok := lint.DefaultRegistry().Get(ruleID)
	require.True(t, ok, "rule %s not registered", ruleID)

	config := lint.NewConfig()
	if opts != nil {
		config.SetRuleOptions(ruleID, opts)
	}

	result, err := lint.ScanText(text, []lint.RuleDef{rule}, config)
	require.NoError(t, err)
	return result.Violations
}

func TestNoTodoComment(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		opts      map[string]any
		wantCount int
	}{
		{
			name:      "todo in line comment",
			text:      "// TODO: handle the error",
			wantCount: 1,
		},
		{
			name:      "fixme after code",
			text:      "let a = 1 // FIXME later",
			wantCount: 1,
		},
		{
			name:      "todo in block comment",
			text:      "/* TODO revisit */",
			wantCount: 1,
		},
		{
			name:      "todo as identifier",
			text:      "let todoList = fetch()",
			wantCount: 0,
		},
		{
			name:      "todo inside string",
			text:      `let s = "TODO"`,
			wantCount: 0,
		},
		{
			name:      "plain comment",
			text:      "// nothing to see here",
			wantCount: 0,
		},
		{
			name:      "custom marker matches",
			text:      "// HACK around the cache",
			opts:      map[string]any{"markers": []string{"HACK"}},
			wantCount: 1,
		},
		{
			name:      "custom marker replaces defaults",
			text:      "// TODO: handle the error",
			opts:      map[string]any{"markers": []string{"HACK"}},
			wantCount: 0,
		},
		{
			name:      "both default markers on one line",
			text:      "// TODO then FIXME",
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := runRule(t, tt.text, "no-todo-comment", tt.opts)
			assert.Len(t, violations, tt.wantCount)
		})
	}
}

func TestNoTodoCommentReport(t *testing.T) {
	violations := runRule(t, "// TODO: handle the error", "no-todo-comment", nil)
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, lint.SeverityInfo, v.Severity)
	assert.Equal(t, 1, v.Pos.Line)
	assert.Equal(t, 4, v.Pos.Column)
	assert.Equal(t, "Comment contains TODO marker", v.Message)
}
