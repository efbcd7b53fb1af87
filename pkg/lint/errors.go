package lint

import "fmt"

// DuplicateRuleError reports an attempt to register a rule whose ID is
// already present. Duplicate builtin IDs are programmer errors and abort
// startup; duplicates from rule scripts surface as configuration errors.
type DuplicateRuleError struct {
	ID string
}

// Error implements the error interface.
func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("rule %q is already registered", e.ID)
}
