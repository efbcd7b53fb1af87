// Package rules aggregates the builtin lint rule catalog.
//
// Rules are organized into category subpackages:
//
//   - comment: rules about comment content (no-todo-comment)
//   - naming: identifier naming rules (type-name-capitalized, var-name-lowercase)
//   - punctuation: token-level rules (no-semicolons, no-forced-unwrap)
//   - structure: code layout rules (opening-brace-same-line)
//   - whitespace: whitespace and line-shape rules (no-space-indent,
//     no-trailing-whitespace, no-blank-line-runs, line-length)
//
// Each category registers its rules with the default registry in init().
// Importing this package makes every builtin rule available:
//
//	import _ "github.com/leapstack-labs/leapstyle/pkg/lint/rules"
//
// Individual categories can be imported instead when only a subset is
// wanted:
//
//	import _ "github.com/leapstack-labs/leapstyle/pkg/lint/rules/whitespace"
//
// Import order fixes registration order, which in turn fixes the report
// order for violations on the same line.
package rules
