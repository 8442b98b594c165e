package chains

import "github.com/katalvlaran/ternopt/filter"

// ExpansionMap records, for every original unique support of a group,
// the support it has been expanded to so far. Initially the identity;
// after each merge every key bound to one of the merged supports is
// rebound to their union. The multiset of current values always equals
// the group's live support list.
type ExpansionMap struct {
	originals []filter.Support          // insertion order, for deterministic iteration
	current   map[string]filter.Support // original key → current support
}

// NewExpansionMap returns the identity map over ss.
func NewExpansionMap(ss []filter.Support) ExpansionMap {
	m := ExpansionMap{
		originals: make([]filter.Support, len(ss)),
		current:   make(map[string]filter.Support, len(ss)),
	}
	for i, s := range ss {
		m.originals[i] = s
		m.current[s.Key()] = s
	}

	return m
}

// Lookup returns the current support an original support is bound to.
func (m ExpansionMap) Lookup(original filter.Support) (filter.Support, bool) {
	cur, ok := m.current[original.Key()]

	return cur, ok
}

// Preimage returns the original supports currently bound to target, in
// insertion order.
func (m ExpansionMap) Preimage(target filter.Support) []filter.Support {
	var result []filter.Support
	for _, o := range m.originals {
		if m.current[o.Key()].Equal(target) {
			result = append(result, o)
		}
	}

	return result
}

// Rebind points every given original support at the new current value.
func (m ExpansionMap) Rebind(originals []filter.Support, to filter.Support) {
	for _, o := range originals {
		m.current[o.Key()] = to
	}
}

// Len reports the number of original supports tracked.
func (m ExpansionMap) Len() int {
	return len(m.originals)
}

// Originals returns the tracked original supports in insertion order.
func (m ExpansionMap) Originals() []filter.Support {
	return m.originals
}
