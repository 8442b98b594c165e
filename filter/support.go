package filter

import (
	"sort"
	"strconv"
	"strings"
)

// Support is the strictly increasing sequence of bit positions at which
// a filter is not Any. Supports are the elements of the subset poset the
// chain-partition algorithms work on.
type Support []int

// ToSupport derives the support of f.
func ToSupport(f Filter) Support {
	var s Support
	for i := 0; i < f.width; i++ {
		if f.Bit(i) != Any {
			s = append(s, i)
		}
	}

	return s
}

// ToSupports derives the support of every filter, preserving order.
func ToSupports(fs []Filter) []Support {
	ss := make([]Support, len(fs))
	for i, f := range fs {
		ss[i] = ToSupport(f)
	}

	return ss
}

// Equal reports element-wise equality.
func (s Support) Equal(t Support) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}

	return true
}

// Compare orders supports lexicographically: the total order used by
// SelectUnique. Returns -1, 0 or +1.
func (s Support) Compare(t Support) int {
	n := len(s)
	if len(t) < n {
		n = len(t)
	}
	for i := 0; i < n; i++ {
		switch {
		case s[i] < t[i]:
			return -1
		case s[i] > t[i]:
			return 1
		}
	}
	switch {
	case len(s) < len(t):
		return -1
	case len(s) > len(t):
		return 1
	}

	return 0
}

// SubsetOf reports whether every position of s occurs in t.
// Both sequences are sorted, so a single linear merge suffices.
func (s Support) SubsetOf(t Support) bool {
	j := 0
	for _, x := range s {
		for j < len(t) && t[j] < x {
			j++
		}
		if j == len(t) || t[j] != x {
			return false
		}
		j++
	}

	return true
}

// Union merges s and t into a new sorted support.
func (s Support) Union(t Support) Support {
	u := make(Support, 0, len(s)+len(t))
	i, j := 0, 0
	for i < len(s) && j < len(t) {
		switch {
		case s[i] < t[j]:
			u = append(u, s[i])
			i++
		case s[i] > t[j]:
			u = append(u, t[j])
			j++
		default:
			u = append(u, s[i])
			i++
			j++
		}
	}
	u = append(u, s[i:]...)
	u = append(u, t[j:]...)

	return u
}

// Key encodes the support as an order-sensitive string over its sorted
// positions, suitable as a map key. The encoding is injective.
func (s Support) Key() string {
	var sb strings.Builder
	for i, x := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(x))
	}

	return sb.String()
}

// String renders the support as "{i, j, …}".
func (s Support) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, x := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteByte('}')

	return sb.String()
}

// SelectUnique sorts ss lexicographically and drops duplicates.
// The result is ascending under Compare and contains each support once;
// the operation is idempotent. The input slice is not modified.
func SelectUnique(ss []Support) []Support {
	sorted := make([]Support, len(ss))
	copy(sorted, ss)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Compare(sorted[j]) < 0 })

	unique := sorted[:0]
	for _, s := range sorted {
		if len(unique) == 0 || !unique[len(unique)-1].Equal(s) {
			unique = append(unique, s)
		}
	}

	return unique
}

// SelectUniqueWithWeights returns the unique supports of ss together
// with the multiplicity of each in the raw input, positionally aligned.
func SelectUniqueWithWeights(ss []Support) ([]Support, []int) {
	unique := SelectUnique(ss)

	count := make(map[string]int, len(unique))
	for _, s := range ss {
		count[s.Key()]++
	}

	weights := make([]int, len(unique))
	for i, s := range unique {
		weights[i] = count[s.Key()]
	}

	return unique, weights
}
