package chains

import (
	"github.com/katalvlaran/ternopt/filter"
	"github.com/katalvlaran/ternopt/flow"
	"github.com/katalvlaran/ternopt/logx"
	"github.com/katalvlaran/ternopt/matching"
)

// subsetEdge remembers one forward subset arc of the flow network so the
// decode pass can test its saturation.
type subsetEdge struct {
	group int
	i, j  int // indices within the group's support list
	id    int // flow edge id
}

// MinBoundedChainPartition partitions each group of unique supports into
// chains such that the total number of chains across all groups does not
// exceed maxChains, minimising the total weight of chain heads. Each
// weights[g][i] is the multiplicity of sss[g][i] and must be positive.
//
// The problem is a single min-cost max-flow:
//
//	vertex layout: for group g with offset off_g, left copies occupy
//	[off_g, off_g+|S_g|) and right copies [T+off_g, T+off_g+|S_g|),
//	T = Σ|S_g|; plus source, auxSource and target.
//
//	edges (capacity, cost):
//	  left i  → right j   (1, 0)            for S_g[i] ⊊ S_g[j]
//	  left i  → right i   (1, weights[g][i]) "keep i as a head" skip edge
//	  auxSource → left i  (1, 0)
//	  right i → target    (1, 0)
//	  source → auxSource  (max(0, T−maxChains), 0)
//
// The source capacity forces at least T−maxChains follower edges or paid
// skips; cost minimisation prefers zero-cost follower edges and, when
// heads must be paid, the cheapest ones. Saturated subset edges become
// matched pairs; skip edges are ignored during chain reconstruction (they
// only carry the head cost). When the cap cannot be met — supports too
// incomparable — the result is simply the best feasible assignment.
func MinBoundedChainPartition(sss [][]filter.Support, weights [][]int, maxChains int) [][][]filter.Support {
	offsets := make([]int, len(sss))
	total := 0
	for g, ss := range sss {
		offsets[g] = total
		total += len(ss)
	}

	g := flow.NewGraph(2*total + 3)
	source := 2 * total
	auxSource := 2*total + 1
	target := 2*total + 2

	var subsetEdges []subsetEdge
	for gi, ss := range sss {
		off := offsets[gi]
		for i := range ss {
			for j := range ss {
				if i != j && ss[i].SubsetOf(ss[j]) && !ss[i].Equal(ss[j]) {
					id := g.AddEdge(off+i, total+off+j, 1, 0)
					subsetEdges = append(subsetEdges, subsetEdge{group: gi, i: i, j: j, id: id})
				}
			}
			g.AddEdge(off+i, total+off+i, 1, weights[gi][i])
		}
	}

	for i := 0; i < total; i++ {
		g.AddEdge(auxSource, i, 1, 0)
		g.AddEdge(total+i, target, 1, 0)
	}

	forced := total - maxChains
	if forced < 0 {
		forced = 0
	}
	g.AddEdge(source, auxSource, forced, 0)

	pushed, cost := g.Run(source, target)
	logx.L().Info("bounded partition flow solved",
		"supports", total, "max_chains", maxChains, "flow", pushed, "head_cost", cost)

	// Decode: saturated subset edges are the matched pairs of each group.
	mates := make([][]int, len(sss))
	for gi, ss := range sss {
		mates[gi] = make([]int, len(ss))
		for i := range mates[gi] {
			mates[gi][i] = matching.Unmatched
		}
	}
	for _, e := range subsetEdges {
		if g.Residual(e.id) == 0 {
			mates[e.group][e.i] = e.j
		}
	}

	result := make([][][]filter.Support, len(sss))
	for gi, ss := range sss {
		result[gi] = chainsFromMates(ss, mates[gi])
	}

	return result
}
