// Package oi maintains order-independent (OI) filter subsets and picks
// which bit columns to drop when a classifier must fit a narrower key.
//
// 🚀 What is order-independence?
//
//	A filter set is OI over a bit set when no two filters can match the
//	same packet restricted to those bits — priority ordering becomes
//	irrelevant, so the set can be split across match-action groups
//	freely.
//
// ✨ What lives here:
//   - FindMaximalOISubset — greedy maximal (not maximum) OI subset in
//     input order; callers permute the input to steer it
//   - BestMinSimilarityBits — pick l columns by minimum similarity
//   - BestToStayMinME — drop one column per round, keeping a maximal OI
//     subset alive, by either of two signals:
//     ModeMaxOI    — score a candidate column by the OI subset size
//     that survives its removal
//     ModeBlockers — count, per column, the filters that would start
//     overlapping a higher-priority filter if the column
//     were dropped; cheapest column loses
//     plus a don't-care fallback that fires when blocker counts plateau
//     and jumps straight to the l most masked-out columns.
//
// The two hot scans (pairwise OI verification and blocker detection)
// fan out over a bounded worker pool; every worker writes only its own
// slot, so results are identical for any worker count. SetWorkers
// configures the pool size.
package oi
