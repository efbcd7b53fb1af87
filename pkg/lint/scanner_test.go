package lint_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/source"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

// charRule reports every occurrence of ch outside strings and comments.
func charRule(id string, ch byte, sev lint.Severity) lint.RuleDef {
	return lint.RuleDef{
		ID:          id,
		Name:        "test." + id,
		Group:       "test",
		Description: "reports " + string(ch),
		Severity:    sev,
		Check: func(ctx lint.Context, _ map[string]any) []lint.Violation {
			var violations []lint.Violation
			code := ctx.Line.Code()
			for i := 0; i < len(code); i++ {
				if code[i] == ch {
					violations = append(violations, lint.Violation{
						RuleID:   id,
						Severity: sev,
						Message:  "found " + string(ch),
						Pos:      token.Position{Line: ctx.Line.Num, Column: i + 1},
					})
				}
			}
			return violations
		},
	}
}

func scan(t *testing.T, text string, rules []lint.RuleDef, cfg *lint.Config) *lint.Result {
	t.Helper()
	result, err := lint.ScanText(text, rules, cfg)
	require.NoError(t, err)
	return result
}

func TestScanEmptyText(t *testing.T) {
	result := scan(t, "", []lint.RuleDef{charRule("semi", ';', lint.SeverityError)}, nil)

	assert.Equal(t, 0, result.LinesScanned, "empty string counts as zero lines")
	assert.Empty(t, result.Violations)
}

func TestScanSingleViolation(t *testing.T) {
	result := scan(t, "let a = 1;\nlet b = 2", []lint.RuleDef{charRule("semi", ';', lint.SeverityError)}, nil)

	assert.Equal(t, 2, result.LinesScanned)
	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, "semi", v.RuleID)
	assert.Equal(t, 1, v.Pos.Line)
	assert.Equal(t, 10, v.Pos.Column)
}

func TestScanNoShortCircuit(t *testing.T) {
	result := scan(t, "a;\nb;\nc;", []lint.RuleDef{charRule("semi", ';', lint.SeverityError)}, nil)

	require.Len(t, result.Violations, 3, "scanning continues after a match")
	for i, v := range result.Violations {
		assert.Equal(t, i+1, v.Pos.Line)
	}
}

func TestScanOrderInvariant(t *testing.T) {
	// Two rules matching the same lines: violations must come out in line
	// order, then rule registration order within a line.
	rules := []lint.RuleDef{
		charRule("first", 'x', lint.SeverityWarning),
		charRule("second", 'y', lint.SeverityWarning),
	}
	result := scan(t, "y x\nx y", rules, nil)

	require.Len(t, result.Violations, 4)
	assert.Equal(t, "first", result.Violations[0].RuleID, "registration order breaks the tie, not column order")
	assert.Equal(t, 1, result.Violations[0].Pos.Line)
	assert.Equal(t, "second", result.Violations[1].RuleID)
	assert.Equal(t, "first", result.Violations[2].RuleID)
	assert.Equal(t, 2, result.Violations[2].Pos.Line)
	assert.Equal(t, "second", result.Violations[3].RuleID)

	for i := 1; i < len(result.Violations); i++ {
		assert.GreaterOrEqual(t, result.Violations[i].Pos.Line, result.Violations[i-1].Pos.Line,
			"line numbers are non-decreasing")
	}
}

func TestScanDeterministic(t *testing.T) {
	rules := []lint.RuleDef{
		charRule("semi", ';', lint.SeverityError),
		charRule("ex", 'x', lint.SeverityWarning),
	}
	text := "let x = 1;\nlet y = 2;\nx;"

	first := scan(t, text, rules, nil)
	second := scan(t, text, rules, nil)

	assert.Equal(t, first, second, "repeated scans yield identical results")
}

func TestScanDoesNotMutateRegistry(t *testing.T) {
	r := lint.NewRegistry()
	require.NoError(t, r.Register(charRule("semi", ';', lint.SeverityError)))

	before := r.All()
	_ = scan(t, "a;b;c;", r.All(), nil)
	_ = scan(t, "d;e;f;", r.All(), nil)

	assert.Equal(t, 1, r.Count())
	// reflect.DeepEqual never reports non-nil func values as equal, so the
	// Check field must be cleared before the slices can be compared.
	assert.Equal(t, withoutCheckFuncs(before), withoutCheckFuncs(r.All()),
		"scanning never mutates the registry")
}

func withoutCheckFuncs(defs []lint.RuleDef) []lint.RuleDef {
	out := make([]lint.RuleDef, len(defs))
	copy(out, defs)
	for i := range out {
		out[i].Check = nil
	}
	return out
}

func TestScanDisabledRule(t *testing.T) {
	cfg := lint.NewConfig().Disable("semi")
	result := scan(t, "let a = 1;", []lint.RuleDef{charRule("semi", ';', lint.SeverityError)}, cfg)

	assert.Empty(t, result.Violations)
}

func TestScanSeverityOverride(t *testing.T) {
	cfg := lint.NewConfig().SetSeverity("semi", lint.SeverityWarning)
	result := scan(t, "let a = 1;", []lint.RuleDef{charRule("semi", ';', lint.SeverityError)}, cfg)

	require.Len(t, result.Violations, 1)
	assert.Equal(t, lint.SeverityWarning, result.Violations[0].Severity)
	assert.False(t, result.HasErrors())
}

func TestScanRuleOptions(t *testing.T) {
	rule := lint.RuleDef{
		ID:       "max-len",
		Severity: lint.SeverityWarning,
		Check: func(ctx lint.Context, opts map[string]any) []lint.Violation {
			max := lint.GetIntOption(opts, "max_length", 10)
			if len(ctx.Line.Text) <= max {
				return nil
			}
			return []lint.Violation{{
				RuleID:   "max-len",
				Severity: lint.SeverityWarning,
				Message:  "line too long",
				Pos:      token.Position{Line: ctx.Line.Num, Column: max + 1},
			}}
		},
	}

	text := strings.Repeat("a", 15)

	result := scan(t, text, []lint.RuleDef{rule}, nil)
	require.Len(t, result.Violations, 1, "default option applies")

	cfg := lint.NewConfig().SetRuleOptions("max-len", map[string]any{"max_length": 20})
	result = scan(t, text, []lint.RuleDef{rule}, cfg)
	assert.Empty(t, result.Violations, "configured option applies")
}

func TestScanSuppressedByDirective(t *testing.T) {
	text := "// leapstyle:disable-next-line semi\nlet a = 1;\nlet b = 2;"
	result := scan(t, text, []lint.RuleDef{charRule("semi", ';', lint.SeverityError)}, nil)

	require.Len(t, result.Violations, 1, "only the undirected line reports")
	assert.Equal(t, 3, result.Violations[0].Pos.Line)
}

func TestScanTextInvalidEncoding(t *testing.T) {
	result, err := lint.ScanText("let a = 1\n\xff", nil, nil)
	require.Error(t, err)
	assert.Nil(t, result, "no partial result on encoding failure")

	var encErr *source.InvalidEncodingError
	assert.True(t, errors.As(err, &encErr))
}

func TestResultCounts(t *testing.T) {
	rules := []lint.RuleDef{
		charRule("err-rule", ';', lint.SeverityError),
		charRule("warn-rule", 'x', lint.SeverityWarning),
	}
	result := scan(t, "x;\nx", rules, nil)

	assert.True(t, result.HasErrors())
	assert.Equal(t, 1, result.Count(lint.SeverityError))
	assert.Equal(t, 2, result.Count(lint.SeverityWarning))
	assert.Equal(t, 0, result.Count(lint.SeverityInfo))
}

func TestContextWindow(t *testing.T) {
	f, err := source.NewFile("t.swift", "one\ntwo\nthree")
	require.NoError(t, err)

	ctx := lint.Context{File: f, Line: f.Lines[1]}
	prev, ok := ctx.Prev()
	require.True(t, ok)
	assert.Equal(t, "one", prev.Text)
	next, ok := ctx.Next()
	require.True(t, ok)
	assert.Equal(t, "three", next.Text)

	first := lint.Context{File: f, Line: f.Lines[0]}
	_, ok = first.Prev()
	assert.False(t, ok)

	last := lint.Context{File: f, Line: f.Lines[2]}
	_, ok = last.Next()
	assert.False(t, ok)
}
