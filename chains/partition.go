package chains

import (
	"github.com/katalvlaran/ternopt/filter"
	"github.com/katalvlaran/ternopt/logx"
	"github.com/katalvlaran/ternopt/matching"
)

// subsetAdjacency builds the bipartite subset graph over ss: left i is
// connected to right j iff ss[i] is a strict subset of ss[j].
func subsetAdjacency(ss []filter.Support) [][]int {
	adj := make([][]int, len(ss))
	for i := range ss {
		for j := range ss {
			if i != j && ss[i].SubsetOf(ss[j]) && !ss[i].Equal(ss[j]) {
				adj[i] = append(adj[i], j)
			}
		}
	}

	return adj
}

// chainsFromMates reconstructs chains from the mate arrays of a
// matching on the subset graph. mateL[i] = j means support i is
// immediately followed by support j in its chain.
//
// A support is a chain start iff no matched edge points at it; walking
// mateL from each start visits every support exactly once, producing
// |ss| − matchingSize chains.
func chainsFromMates(ss []filter.Support, mateL []int) [][]filter.Support {
	isChainStart := make([]bool, len(ss))
	for i := range isChainStart {
		isChainStart[i] = true
	}
	for i := range ss {
		if mateL[i] != matching.Unmatched {
			isChainStart[mateL[i]] = false
		}
	}

	var result [][]filter.Support
	for i := range ss {
		if !isChainStart[i] {
			continue
		}
		var chain []filter.Support
		for j := i; ; j = mateL[j] {
			chain = append(chain, ss[j])
			if mateL[j] == matching.Unmatched {
				break
			}
		}
		result = append(result, chain)
	}

	return result
}

// MinChainPartition partitions ss (unique supports) into the minimum
// number of chains of the strict-subset order.
//
// Steps:
//  1. Build the bipartite subset graph (O(|S|² · w)).
//  2. Maximum matching via Hopcroft–Karp; each matched edge (i, j)
//     reads "i is followed by j in some chain".
//  3. Reconstruct chains from the mate arrays.
//
// The result covers every support exactly once and has exactly
// |S| − matchingSize chains (Dilworth).
func MinChainPartition(ss []filter.Support) [][]filter.Support {
	adj := subsetAdjacency(ss)
	mateL, _, _ := matching.HopcroftKarp(len(ss), len(ss), adj)

	return chainsFromMates(ss, mateL)
}

// MaxAntichain extracts a maximum antichain of ss: the indices of a
// largest set of pairwise subset-incomparable supports.
//
// By König's theorem applied to the Dilworth matching, element i is in
// the antichain iff the alternating-path scan reaches left copy i but
// not right copy i. The antichain size equals the number of chains in
// MinChainPartition(ss).
func MaxAntichain(ss []filter.Support) []int {
	adj := subsetAdjacency(ss)
	mateL, mateR, size := matching.HopcroftKarp(len(ss), len(ss), adj)
	reachedL, reachedR := matching.AlternatingReach(adj, mateL, mateR)

	var result []int
	for i := range ss {
		if reachedL[i] && !reachedR[i] {
			result = append(result, i)
		}
	}

	logx.L().Info("antichain extracted",
		"supports", len(ss),
		"chain_cover", len(ss)-size,
		"antichain", len(result))

	return result
}
