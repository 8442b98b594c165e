// Package matching implements maximum-cardinality matching on bipartite
// graphs (Hopcroft–Karp) together with the alternating-path reachability
// scan that turns a maximum matching into a maximum antichain
// (König's theorem).
//
// Graphs are index-addressed: nLeft left vertices, nRight right
// vertices, and adj[i] listing the right endpoints of left vertex i.
// No vertex abstraction beyond the int id is needed — every caller in
// ternopt builds the graph once, solves it, and throws it away.
package matching
