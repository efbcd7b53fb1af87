package punctuation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	_ "github.com/leapstack-labs/leapstyle/pkg/lint/rules" // register rules
)

// Helper to scan text with a single rule and return its violations.
func runRule(t *testing.T, text string, ruleID string) []lint.Violation {
	t.Helper()
	rule, ok := lint.DefaultRegistry().Get(ruleID)
	require.True(t, ok, "rule %s not registered", ruleID)

	result, err := lint.ScanText(text, []lint.RuleDef{rule}, nil)
	require.NoError(t, err)
	return result.Violations
}

func TestNoSemicolons(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCount int
	}{
		{
			name:      "statement terminator",
			text:      "let a = 1;\nlet b = 2",
			wantCount: 1,
		},
		{
			name:      "no semicolons",
			text:      "let a = 1\nlet b = 2",
			wantCount: 0,
		},
		{
			name:      "semicolon inside string literal",
			text:      `let s = "a;b"`,
			wantCount: 0,
		},
		{
			name:      "semicolon inside line comment",
			text:      "let a = 1 // stop; now",
			wantCount: 0,
		},
		{
			name:      "semicolon inside block comment",
			text:      "let a = /* x; y */ 1",
			wantCount: 0,
		},
		{
			name:      "two statements on one line",
			text:      "let a = 1; let b = 2;",
			wantCount: 2,
		},
		{
			name:      "escaped quotes then real semicolon",
			text:      `let s = "say \"hi\"; done"; let t = 2`,
			wantCount: 1,
		},
		{
			name:      "empty input",
			text:      "",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := runRule(t, tt.text, "no-semicolons")
			assert.Len(t, violations, tt.wantCount)
		})
	}
}

func TestNoSemicolonsPosition(t *testing.T) {
	violations := runRule(t, "let a = 1;\nlet b = 2", "no-semicolons")
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, "no-semicolons", v.RuleID)
	assert.Equal(t, lint.SeverityError, v.Severity)
	assert.Equal(t, 1, v.Pos.Line)
	assert.Equal(t, 10, v.Pos.Column)
}

func TestNoSemicolonsColumnAfterString(t *testing.T) {
	violations := runRule(t, `let s = "say \"hi\"; done"; let t = 2`, "no-semicolons")
	require.Len(t, violations, 1)
	assert.Equal(t, 27, violations[0].Pos.Column)
}

func TestNoForcedUnwrap(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCount int
	}{
		{
			name:      "unwrap after identifier",
			text:      "let name = user.name!",
			wantCount: 1,
		},
		{
			name:      "unwrap after call",
			text:      "let z = (a + b)!",
			wantCount: 1,
		},
		{
			name:      "unwrap after subscript",
			text:      "let first = rows[0]!",
			wantCount: 1,
		},
		{
			name:      "not-equal comparison",
			text:      "if a != b { return }",
			wantCount: 0,
		},
		{
			name:      "prefix negation",
			text:      "let ok = !flag",
			wantCount: 0,
		},
		{
			name:      "forced try",
			text:      "let x = try! decode()",
			wantCount: 0,
		},
		{
			name:      "forced cast",
			text:      "let y = value as! String",
			wantCount: 0,
		},
		{
			name:      "bang inside comment",
			text:      "// crash! boom",
			wantCount: 0,
		},
		{
			name:      "bang inside string",
			text:      `print("hello!")`,
			wantCount: 0,
		},
		{
			name:      "two unwraps on one line",
			text:      "print(results.first!.owner!)",
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := runRule(t, tt.text, "no-forced-unwrap")
			assert.Len(t, violations, tt.wantCount)
		})
	}
}

func TestNoForcedUnwrapPosition(t *testing.T) {
	violations := runRule(t, "let name = user.name!", "no-forced-unwrap")
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, lint.SeverityWarning, v.Severity)
	assert.Equal(t, 1, v.Pos.Line)
	assert.Equal(t, 21, v.Pos.Column)
}
