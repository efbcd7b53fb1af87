package lint

import (
	"github.com/leapstack-labs/leapstyle/pkg/core"
	"github.com/leapstack-labs/leapstyle/pkg/source"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

// =============================================================================
// Severity
// =============================================================================

// Severity is re-exported from core so rule packages only import lint.
type Severity = core.Severity

// Severity levels for violations.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityInfo    = core.SeverityInfo
	SeverityHint    = core.SeverityHint
)

// ParseSeverity converts a string to a Severity value.
func ParseSeverity(s string) (Severity, bool) {
	return core.ParseSeverity(s)
}

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition. Rules are stateless - all
// context comes via the Check function parameters, which keeps every rule a
// pure predicate over one line of source.
type RuleDef struct {
	ID          string    // Unique identifier, e.g., "no-semicolons"
	Name        string    // Dotted name, e.g., "punctuation.semicolons"
	Group       string    // Category, e.g., "punctuation", "whitespace"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function
	ConfigKeys  []string  // Configuration keys this rule accepts
	Origin      string    // "builtin" (default) or "script"

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc examines one line and returns its violations. Checks must
// report violations for the context line only and must not retain or
// mutate anything they are given.
type CheckFunc func(ctx Context, opts map[string]any) []Violation

// Context gives a check function one line plus bounded access to its
// neighbors for small line-window rules.
type Context struct {
	File *source.File
	Line source.Line
}

// Prev returns the previous line, if any.
func (c Context) Prev() (source.Line, bool) {
	i := c.Line.Num - 2
	if i < 0 || i >= len(c.File.Lines) {
		return source.Line{}, false
	}
	return c.File.Lines[i], true
}

// Next returns the next line, if any.
func (c Context) Next() (source.Line, bool) {
	i := c.Line.Num
	if i < 0 || i >= len(c.File.Lines) {
		return source.Line{}, false
	}
	return c.File.Lines[i], true
}

// =============================================================================
// Violations
// =============================================================================

// Violation represents one line failing a rule's matcher.
type Violation struct {
	RuleID   string
	Severity Severity
	Message  string
	Pos      token.Position // Line is 1-based; Column 0 means unreported
}

// Result is the immutable outcome of scanning one file. It is a pure
// snapshot: violations appear in line order, then rule registration order
// within a line.
type Result struct {
	Path         string
	Violations   []Violation
	LinesScanned int
}

// HasErrors returns true if any violation has error severity.
func (r *Result) HasErrors() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of violations with the given severity.
func (r *Result) Count(sev Severity) int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == sev {
			n++
		}
	}
	return n
}

// =============================================================================
// Rule metadata
// =============================================================================

// GetRuleInfo extracts metadata from a RuleDef for documentation/tooling.
func GetRuleInfo(r RuleDef) core.RuleInfo {
	origin := r.Origin
	if origin == "" {
		origin = "builtin"
	}
	return core.RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		ConfigKeys:      r.ConfigKeys,
		Origin:          origin,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
}
