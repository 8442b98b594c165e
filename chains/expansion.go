package chains

import (
	"math"

	"github.com/holiman/uint256"

	"github.com/katalvlaran/ternopt/filter"
	"github.com/katalvlaran/ternopt/logx"
)

// memoryIncrease computes the TCAM blow-up Δ of expanding supports a and
// b (indices into ss) to their union u:
//
//	Δ = w_a·(2^(|u|−|a|) − 1) + w_b·(2^(|u|−|b|) − 1)
//
// The exponents can reach the full filter width, so the powers are taken
// in 256-bit arithmetic; a Δ that does not fit int64 is reported as
// !ok — a "forbidden" merge that no budget can admit.
func memoryIncrease(a, b int, ss []filter.Support, weights []int) (int64, bool) {
	u := ss[a].Union(ss[b])

	total := uint256.NewInt(0)
	for _, idx := range []int{a, b} {
		pow := new(uint256.Int).Lsh(uint256.NewInt(1), uint(len(u)-len(ss[idx])))
		pow.SubUint64(pow, 1)
		total.Add(total, pow.Mul(pow, uint256.NewInt(uint64(weights[idx]))))
	}

	if !total.IsUint64() || total.Uint64() > math.MaxInt64 {
		return 0, false
	}

	return int64(total.Uint64()), true
}

// reduction is one candidate merge inside a group: expand supports a and
// b to their union at memory cost delta.
type reduction struct {
	a, b  int
	delta int64
	valid bool
}

// tryReduceAntichain proposes the cheapest merge that would shrink the
// maximum antichain ac of ss, subject to the remaining budget.
//
// Two candidate classes are tried in strict priority:
//
//	Class 1: a ∈ ac together with any strict superset of ss[a]. If any
//	such pair exists at all, the group commits to this class — even when
//	every pair exceeds the budget (the proposal is then invalid and the
//	group simply has nothing to offer this round).
//	Class 2: both endpoints in the antichain.
//
// Within a class the smallest Δ within budget wins, first seen on ties.
func tryReduceAntichain(ac []int, ss []filter.Support, weights []int, budget int64) reduction {
	best := reduction{a: -1, b: -1}
	classOneFound := false

	for _, a := range ac {
		for i := range ss {
			if !ss[a].SubsetOf(ss[i]) || ss[a].Equal(ss[i]) {
				continue
			}
			classOneFound = true

			delta, ok := memoryIncrease(a, i, ss, weights)
			if !ok {
				continue
			}
			logx.L().Info("considering merge", "a", ss[a].String(), "b", ss[i].String(), "delta", delta)
			if delta <= budget && (!best.valid || delta < best.delta) {
				best = reduction{a: a, b: i, delta: delta, valid: true}
			}
		}
	}

	if classOneFound {
		return best
	}

	for _, a := range ac {
		for _, b := range ac {
			if a == b {
				continue
			}
			delta, ok := memoryIncrease(a, b, ss, weights)
			if !ok {
				continue
			}
			logx.L().Info("considering antichain merge", "a", a, "b", b, "delta", delta)
			if delta <= budget && (!best.valid || delta < best.delta) {
				best = reduction{a: a, b: b, delta: delta, valid: true}
			}
		}
	}

	return best
}

// expand applies the merge (a, b) to the group state: both supports are
// replaced by their union, whose weight absorbs both weights plus the
// blow-up Δ, and every original support bound to either side is rebound
// to the union. Returns Δ.
func expand(a, b int, ss *[]filter.Support, weights *[]int, m ExpansionMap) int64 {
	if b < a {
		a, b = b, a
	}

	preA := m.Preimage((*ss)[a])
	preB := m.Preimage((*ss)[b])
	union := (*ss)[a].Union((*ss)[b])
	delta, ok := memoryIncrease(a, b, *ss, *weights)
	if !ok {
		panic("ternopt: expansion cost overflow on an accepted merge")
	}
	newWeight := (*weights)[a] + (*weights)[b] + int(delta)

	logx.L().Info("expanding", "a", a, "b", b, "old_size", len(*ss))

	// Remove b first: it is the larger index, so a stays valid.
	*ss = append((*ss)[:b], (*ss)[b+1:]...)
	*weights = append((*weights)[:b], (*weights)[b+1:]...)
	*ss = append((*ss)[:a], (*ss)[a+1:]...)
	*weights = append((*weights)[:a], (*weights)[a+1:]...)

	*ss = append(*ss, union)
	*weights = append(*weights, newWeight)

	m.Rebind(preA, union)
	m.Rebind(preB, union)

	logx.L().Info("expansion applied", "new_size", len(*ss))

	return delta
}

// MinChainPartitionWithExpansion iteratively merges supports to shrink
// the maximum antichain of each group while total memory stays within
// maxMemory. Inputs are not modified.
//
// Steps, repeated until no group can propose a merge:
//  1. For each group, extract the maximum antichain and ask
//     tryReduceAntichain for its cheapest budget-respecting merge.
//  2. Apply the globally cheapest proposal and charge its Δ against the
//     budget.
//
// Returns the final per-group support lists and the expansion maps
// binding every original unique support to its expanded form. The value
// multiset of each map equals the group's final support list at all
// times, and total memory never exceeds maxMemory.
func MinChainPartitionWithExpansion(
	sss [][]filter.Support,
	weights [][]int,
	maxMemory int,
) ([][]filter.Support, []ExpansionMap) {
	curSupports := make([][]filter.Support, len(sss))
	curWeights := make([][]int, len(sss))
	expansions := make([]ExpansionMap, len(sss))

	var currentMemory int64
	for g := range sss {
		curSupports[g] = append([]filter.Support(nil), sss[g]...)
		curWeights[g] = append([]int(nil), weights[g]...)
		expansions[g] = NewExpansionMap(sss[g])
		for _, w := range weights[g] {
			currentMemory += int64(w)
		}
	}

	for {
		budget := int64(maxMemory) - currentMemory

		proposals := make([]reduction, len(curSupports))
		for g := range curSupports {
			ac := MaxAntichain(curSupports[g])
			proposals[g] = tryReduceAntichain(ac, curSupports[g], curWeights[g], budget)
		}

		bestGroup := -1
		for g, p := range proposals {
			if p.valid && (bestGroup == -1 || p.delta < proposals[bestGroup].delta) {
				bestGroup = g
			}
		}
		if bestGroup == -1 {
			break
		}

		p := proposals[bestGroup]
		currentMemory += expand(p.a, p.b, &curSupports[bestGroup], &curWeights[bestGroup], expansions[bestGroup])
	}

	return curSupports, expansions
}
