// Package flow provides integer min-cost max-flow via successive
// shortest paths, the engine behind the bounded chain partition.
//
// 🚀 What is min-cost max-flow?
//
//	Among all maximum flows from source to sink, find one of minimum
//	total cost (sum over edges of flow × cost). The bounded chain
//	partition encodes "pay the weight of every chain head" as edge
//	costs and lets the flow pick the cheapest heads.
//
// ✨ Key properties:
//   - adjacency-list graph over dense integer vertex ids
//   - explicit reverse-edge bookkeeping: every AddEdge also creates the
//     zero-capacity reverse edge with negated cost
//   - successive shortest paths with Dijkstra + Johnson potentials;
//     edge costs must be nonnegative as supplied
//   - per-edge residual inspection after the run, for decoding which
//     forward edges were saturated
//
// ⚙️ Usage:
//
//	g := flow.NewGraph(4)
//	e := g.AddEdge(0, 1, 1, 5) // capacity 1, cost 5
//	g.AddEdge(1, 3, 1, 0)
//	maxFlow, minCost := g.Run(0, 3)
//	saturated := g.Residual(e) == 0
//
// Complexity: O(F · E log V) where F is the value of the maximum flow.
package flow
