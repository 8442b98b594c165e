// Package filter models ternary packet-classification rules and their
// supports — the raw material of every optimization pass in ternopt.
//
// 🚀 What is a ternary filter?
//
//	A match specification of width w where every bit position is one of
//	  • One  — the packet bit must be 1
//	  • Zero — the packet bit must be 0
//	  • Any  — the position is masked out (don't-care)
//
//	Internally a Filter is a pair of fixed bit arrays (value, mask): a
//	position is Any when its mask bit is clear, and the stored value bit
//	is then ignored (and kept at zero, so equality is plain array
//	equality over the canonical form).
//
// ✨ Key operations:
//   - Intersect — can two filters match the same packet over a bit set?
//   - ToSupport — the sorted positions at which a filter is not Any
//   - SelectUnique / SelectUniqueWithWeights — dedup supports and count
//     multiplicities for the chain-partition algorithms
//
// ⚙️ Usage:
//
//	f, err := filter.Parse("1*00")
//	s := filter.ToSupport(f)      // Support{0, 2, 3}
//
// All types in this package are plain values; none of them retain
// references to caller-owned slices after construction.
package filter
