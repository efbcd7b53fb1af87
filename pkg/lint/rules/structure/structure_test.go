package structure_test

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

func TestOpeningBraceSameLine(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCount int
		wantLine  int
	}{
		{
			name:      "brace on its own line",
			text:      "func total() -> Int\n{\n    return sum\n}",
			wantCount: 1,
			wantLine:  2,
		},
		{
			name:      "brace on the declaration line",
			text:      "func total() -> Int {\n    return sum\n}",
			wantCount: 0,
		},
		{
			name:      "indented lone brace",
			text:      "if ready\n    {\n    run()\n    }",
			wantCount: 1,
			wantLine:  2,
		},
		{
			name:      "lone brace with trailing comment",
			text:      "struct Wallet\n{ // begin",
			wantCount: 1,
			wantLine:  2,
		},
		{
			name:      "brace inside string",
			text:      `let s = "{"`,
			wantCount: 0,
		},
		{
			name:      "single-line block",
			text:      "if x { y() }",
			wantCount: 0,
		},
		{
			name:      "closing brace alone",
			text:      "}",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := runRule(t, tt.text, "opening-brace-same-line")
			require.Len(t, violations, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantLine, violations[0].Pos.Line)
			}
		})
	}
}

func TestOpeningBraceSameLineColumn(t *testing.T) {
	violations := runRule(t, "if ready\n    {", "opening-brace-same-line")
	require.Len(t, violations, 1)
	assert.Equal(t, 5, violations[0].Pos.Column)
}
