package lint

import (
	"fmt"
	"sync"
)

// defaultRegistry holds rules registered at package init time.
var defaultRegistry = NewRegistry()

// Registry stores rule definitions in registration order. Identifiers are
// unique; registration order is the tie-break order for violations reported
// on the same line.
type Registry struct {
	mu    sync.RWMutex
	order []string
	rules map[string]RuleDef
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]RuleDef),
	}
}

// Register adds a rule. It fails with *DuplicateRuleError when the ID is
// already present.
func (r *Registry) Register(rule RuleDef) error {
	if rule.ID == "" {
		return fmt.Errorf("rule has no ID")
	}
	if rule.Check == nil {
		return fmt.Errorf("rule %q has no check function", rule.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rules[rule.ID]; exists {
		return &DuplicateRuleError{ID: rule.ID}
	}
	r.rules[rule.ID] = rule
	r.order = append(r.order, rule.ID)
	return nil
}

// MustRegister adds a rule and panics on failure.
// Call this from init() functions in rule packages.
func (r *Registry) MustRegister(rule RuleDef) {
	if err := r.Register(rule); err != nil {
		panic(err)
	}
}

// All returns all rules in registration order. The returned slice is a
// fresh copy on every call.
func (r *Registry) All() []RuleDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]RuleDef, 0, len(r.order))
	for _, id := range r.order {
		rules = append(rules, r.rules[id])
	}
	return rules
}

// Get returns a rule by its ID.
func (r *Registry) Get(id string) (RuleDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	return rule, ok
}

// ByGroup returns all rules in a specific group, in registration order.
func (r *Registry) ByGroup(group string) []RuleDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rules []RuleDef
	for _, id := range r.order {
		if r.rules[id].Group == group {
			rules = append(rules, r.rules[id])
		}
	}
	return rules
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Clear removes all registered rules. Used for testing.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
	r.rules = make(map[string]RuleDef)
}

// DefaultRegistry returns the registry builtin rules register into.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a rule to the default registry.
func Register(rule RuleDef) error {
	return defaultRegistry.Register(rule)
}

// MustRegister adds a rule to the default registry and panics on failure.
// Call this from init() functions in rule packages.
func MustRegister(rule RuleDef) {
	defaultRegistry.MustRegister(rule)
}
