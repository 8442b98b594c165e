package flow

import (
	"container/heap"
	"fmt"
)

// edge is one directed arc of the residual network. Forward and reverse
// arcs are stored adjacently: edge e and e^1 are each other's reverse.
type edge struct {
	to   int
	cap  int
	cost int
}

// Graph is a flow network over vertices 0..n-1. The zero value is not
// usable; construct with NewGraph.
type Graph struct {
	n     int
	edges []edge
	adj   [][]int // adj[v] = indices into edges
}

// NewGraph returns an empty flow network on n vertices.
func NewGraph(n int) *Graph {
	return &Graph{
		n:   n,
		adj: make([][]int, n),
	}
}

// AddEdge inserts a directed edge u→v with the given capacity and
// nonnegative cost, plus its zero-capacity reverse arc with negated
// cost. It returns the forward edge's id for later Residual inspection.
// Panics on a vertex out of range, negative capacity or negative cost —
// the callers build these graphs programmatically, so a bad edge is a
// bug, not an input error.
func (g *Graph) AddEdge(u, v, capacity, cost int) int {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		panic(fmt.Sprintf("flow: edge %d→%d out of vertex range [0, %d)", u, v, g.n))
	}
	if capacity < 0 || cost < 0 {
		panic(fmt.Sprintf("flow: edge %d→%d has negative capacity or cost", u, v))
	}

	id := len(g.edges)
	g.edges = append(g.edges, edge{to: v, cap: capacity, cost: cost})
	g.edges = append(g.edges, edge{to: u, cap: 0, cost: -cost})
	g.adj[u] = append(g.adj[u], id)
	g.adj[v] = append(g.adj[v], id^1)

	return id
}

// Residual reports the remaining capacity of the edge returned by
// AddEdge. Zero means the edge was saturated by Run.
func (g *Graph) Residual(id int) int {
	return g.edges[id].cap
}

// pqItem is a Dijkstra frontier entry.
type pqItem struct {
	dist int
	v    int
}

// pq is a binary min-heap of frontier entries.
type pq []pqItem

func (q pq) Len() int            { return len(q) }
func (q pq) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q pq) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pq) Push(x interface{}) { *q = append(*q, x.(pqItem)) }
func (q *pq) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

// Run pushes the maximum flow from source to target at minimum total
// cost and returns both. It may be called once per graph.
//
// Steps, repeated until target becomes unreachable:
//  1. Dijkstra over reduced costs cost(e) + h(u) − h(v), where h are the
//     Johnson potentials of the previous round (all zero initially —
//     valid because every supplied cost is nonnegative).
//  2. Fold the round's distances into the potentials.
//  3. Walk the parent edges target→source to find the bottleneck
//     capacity, then augment along the path, mirroring every push on
//     the reverse arc.
//
// Complexity: O(F · E log V) time, O(V + E) memory.
func (g *Graph) Run(source, target int) (maxFlow, minCost int) {
	const inf = int(^uint(0) >> 1)

	h := make([]int, g.n)    // potentials
	dist := make([]int, g.n) // reduced-cost distances per round
	parentEdge := make([]int, g.n)

	for {
		// 1) Dijkstra with reduced costs.
		for v := range dist {
			dist[v] = inf
			parentEdge[v] = -1
		}
		dist[source] = 0
		frontier := pq{{dist: 0, v: source}}
		for frontier.Len() > 0 {
			item := heap.Pop(&frontier).(pqItem)
			if item.dist > dist[item.v] {
				continue // stale entry
			}
			for _, id := range g.adj[item.v] {
				e := g.edges[id]
				if e.cap == 0 {
					continue
				}
				next := dist[item.v] + e.cost + h[item.v] - h[e.to]
				if next < dist[e.to] {
					dist[e.to] = next
					parentEdge[e.to] = id
					heap.Push(&frontier, pqItem{dist: next, v: e.to})
				}
			}
		}
		if dist[target] == inf {
			break // no augmenting path left
		}

		// 2) Fold distances into potentials for the next round.
		for v := range h {
			if dist[v] != inf {
				h[v] += dist[v]
			}
		}

		// 3) Bottleneck along the shortest path, then augment.
		bottleneck := inf
		for v := target; v != source; {
			id := parentEdge[v]
			if g.edges[id].cap < bottleneck {
				bottleneck = g.edges[id].cap
			}
			v = g.edges[id^1].to
		}
		for v := target; v != source; {
			id := parentEdge[v]
			g.edges[id].cap -= bottleneck
			g.edges[id^1].cap += bottleneck
			minCost += bottleneck * g.edges[id].cost
			v = g.edges[id^1].to
		}
		maxFlow += bottleneck
	}

	return maxFlow, minCost
}
