// Package lint provides a line-oriented style linting framework.
//
// # Architecture
//
// The lint package has three layers:
//
//  1. Root package (pkg/lint/): rule contracts, the ordered registry,
//     configuration, and the scanner
//  2. Builtin rules (pkg/lint/rules/): rule catalog grouped by category
//  3. Source decoding (pkg/source/): UTF-8 validation, line splitting, and
//     the lexical mask rules match against
//
// # Rule Registration
//
// Builtin rules register via init() when their packages are imported:
//
//	import _ "github.com/leapstack-labs/leapstyle/pkg/lint/rules"
//
// Registration order is part of the contract: violations on the same line
// are reported in the order their rules were registered. Registering two
// rules with the same ID fails with *DuplicateRuleError.
//
// # Rule Categories
//
//   - punctuation: semicolons, forced unwraps
//   - whitespace: indentation, trailing whitespace, blank runs, line length
//   - naming: type and binding capitalization
//   - structure: brace placement
//   - comment: comment content
//
// # Scanning
//
// Scan a decoded file against a rule list:
//
//	file, err := source.NewFile(path, content)
//	result := lint.Scan(file, lint.DefaultRegistry().All(), nil)
//
// or scan raw text directly:
//
//	result, err := lint.ScanText(content, rules, nil)
//
// Scanning is pure: identical inputs produce identical Results and nothing
// is mutated, so scans may run concurrently over disjoint files.
//
// # Configuration
//
// Use Config to control which rules run and how they report:
//
//	config := lint.NewConfig()
//	config.Disable("no-todo-comment")
//	config.SetSeverity("line-length", core.SeverityError)
//	config.SetRuleOptions("line-length", map[string]any{"max_length": 100})
//
// # Creating Custom Rules
//
// A rule is a data record plus a pure check function:
//
//	var MyRule = lint.RuleDef{
//		ID:          "my-rule",
//		Name:        "custom.my_rule",
//		Group:       "custom",
//		Description: "My custom rule description",
//		Severity:    lint.SeverityWarning,
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.MustRegister(MyRule)
//	}
package lint
