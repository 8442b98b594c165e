// Package chains partitions sets of filter supports into chains of the
// strict-subset order, the layout step that maps classifier rules onto
// a bounded number of match-action groups.
//
// 🚀 What lives here?
//
//   - MinChainPartition — Dilworth-style minimum chain partition via
//     maximum bipartite matching; the number of chains equals
//     |S| − matchingSize.
//   - MaxAntichain — a maximum antichain extracted from the same
//     matching by König's theorem.
//   - MinBoundedChainPartition — the multi-group variant with a global
//     cap on the number of chains, solved as one min-cost max-flow.
//   - MinChainPartitionWithExpansion — iteratively shrinks the maximum
//     antichain by merging two supports (expanding the underlying rules
//     to their union support) while a memory budget permits.
//
// ✨ Guarantees:
//   - every unique support appears in exactly one chain; consecutive
//     supports in a chain are strictly ordered by subset
//   - the expansion loop never exceeds the memory budget and keeps the
//     original→current expansion map consistent with the support list
//
// Infeasibility is not an error: the bounded variant returns the best
// assignment its flow admits, and the expansion loop simply stops when
// no merge fits the remaining budget.
package chains
