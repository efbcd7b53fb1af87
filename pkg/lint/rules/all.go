package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	// Import rule categories - each registers its rules via init()
	_ "github.com/leapstack-labs/leapstyle/pkg/lint/rules/comment"
	_ "github.com/leapstack-labs/leapstyle/pkg/lint/rules/naming"
	_ "github.com/leapstack-labs/leapstyle/pkg/lint/rules/punctuation"
	_ "github.com/leapstack-labs/leapstyle/pkg/lint/rules/structure"
	_ "github.com/leapstack-labs/leapstyle/pkg/lint/rules/whitespace"
)
