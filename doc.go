// Package ternopt optimizes ternary packet-classification rule sets
// (TCAM-style filters) for hardware with limited memory and a bounded
// number of match-action groups.
//
// 🚀 What is ternopt?
//
//	A pure in-memory combinatorial engine. It takes batches of ternary
//	rules and answers three questions:
//
//	  • How few chains (subset-ordered support sequences) cover the
//	    rule set?                          — MinChainPartition
//	  • How do we stay under a global chain budget across many rule
//	    groups, paying for the cheapest chain heads?
//	                                       — MinBoundedChainPartition
//	  • Which rules should be expanded (care-bits promoted to
//	    don't-care, at a quantified TCAM cost) so the partition
//	    shrinks within a memory budget?
//	                                       — MinChainPartitionWithExpansion
//
//	And, when the rule width must shrink: which bit columns keep the
//	largest order-independent rule subset alive — BestSubgroup.
//
// ✨ Why choose ternopt?
//
//   - Deterministic — ties broken by documented first-seen rules; the
//     parallel scans are bit-identical for any worker count
//   - Self-contained — no persistent state, no I/O beyond a best-effort
//     diagnostic log; every call owns its own scratch memory
//   - Grounded — Dilworth chain covers via bipartite matching, König
//     antichains, and a min-cost max-flow formulation of the bounded
//     partition
//
// Under the hood, everything is organized under six subpackages:
//
//	filter/   — ternary filters, supports, intersection
//	oi/       — order-independent subsets & bit-selection heuristics
//	matching/ — Hopcroft–Karp matching + König reachability
//	flow/     — integer min-cost max-flow (successive shortest paths)
//	chains/   — chain partitions, antichains, bounded & expanding variants
//	logx/     — append-to-file diagnostic log
//
// This package ties them together into the four batch entry points plus
// the worker-pool knob (SetNumThreads).
package ternopt
