package session

import "os"

// ExpansionPolicy selects how many option cards may be expanded at once.
// The observed UI variants disagree, so it is a configuration choice.
type ExpansionPolicy int

const (
	// SingleExpansion keeps at most one card open; expanding another
	// collapses the previous one. This is the default.
	SingleExpansion ExpansionPolicy = iota
	// MultiExpansion lets each card toggle independently.
	MultiExpansion
)

// PolicyFromEnv reads PATHWAY_EXPANSION_MODE ("single" or "multi").
func PolicyFromEnv() ExpansionPolicy {
	if os.Getenv("PATHWAY_EXPANSION_MODE") == "multi" {
		return MultiExpansion
	}
	return SingleExpansion
}

// ExpansionTracker records which option cards are expanded, keyed by
// option identity. Its lifecycle is independent of the result set: state
// survives a promote, and a re-fetched option with the same key keeps its
// prior expansion. Unseen keys start collapsed.
type ExpansionTracker struct {
	policy ExpansionPolicy
	open   map[string]bool
}

// NewExpansionTracker creates an empty tracker with the given policy.
func NewExpansionTracker(policy ExpansionPolicy) *ExpansionTracker {
	return &ExpansionTracker{
		policy: policy,
		open:   make(map[string]bool),
	}
}

// Toggle flips the expanded state for key. Under SingleExpansion,
// expanding a card collapses any other open card.
func (t *ExpansionTracker) Toggle(key string) {
	if t.open[key] {
		delete(t.open, key)
		return
	}
	if t.policy == SingleExpansion {
		for k := range t.open {
			delete(t.open, k)
		}
	}
	t.open[key] = true
}

// Expanded reports whether the card for key is expanded.
func (t *ExpansionTracker) Expanded(key string) bool {
	return t.open[key]
}

// ExpandedCount returns the number of expanded cards.
func (t *ExpansionTracker) ExpandedCount() int {
	return len(t.open)
}
